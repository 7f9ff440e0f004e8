package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	caseID     int
	modeTag    string
	pin1       int
	pin2       int
	pin3       int
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gpiocert",
		Short:         "gpiocert certifies a GPIO controller's line management, one case per run",
		Long: `gpiocert drives one numbered conformance case against a GPIO controller
reached through the sysfs line-control transport and reports pass/fail.

Example: case 270 on a board whose controller exposes pins 0, 8 and 9:
  gpiocert -c 270 -t m -1 0 -2 8 -3 9`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCaseCmd(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.caseID, "case", "c", 0, "Numeric case identifier (required)")
	cmd.Flags().StringVarP(&flags.modeTag, "type", "t", "", "Addressing mode: 's' single, 'm' multiple, 'a' all lines")
	cmd.Flags().IntVarP(&flags.pin1, "pin1", "1", 0, "First pin offset relative to the controller base")
	cmd.Flags().IntVarP(&flags.pin2, "pin2", "2", 0, "Second pin offset (multiple mode)")
	cmd.Flags().IntVarP(&flags.pin3, "pin3", "3", 0, "Third pin offset (multiple mode)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Optional YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
