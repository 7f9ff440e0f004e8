package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gbfwtest/gpiocert/internal/scenario"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the supported case identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-6s %-30s %s\n", "Case", "Name", "Modes")
			fmt.Fprintln(w, strings.Repeat("-", 50))

			for _, sc := range scenario.All() {
				modes := make([]string, 0, len(sc.Modes))
				for _, m := range sc.Modes {
					modes = append(modes, m.String())
				}
				fmt.Fprintf(w, "%-6d %-30s %s\n", sc.CaseID, sc.Name, strings.Join(modes, ", "))
			}

			return nil
		},
	}

	return cmd
}
