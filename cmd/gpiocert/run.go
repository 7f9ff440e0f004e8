package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gbfwtest/gpiocert/internal/addressing"
	"github.com/gbfwtest/gpiocert/internal/capability"
	"github.com/gbfwtest/gpiocert/internal/config"
	"github.com/gbfwtest/gpiocert/internal/engine"
	"github.com/gbfwtest/gpiocert/internal/logger"
	"github.com/gbfwtest/gpiocert/internal/model"
	"github.com/gbfwtest/gpiocert/internal/scenario"
	gpioerrors "github.com/gbfwtest/gpiocert/pkg/errors"
)

// exitFunc is swappable so command tests can intercept the exit status.
var exitFunc = os.Exit

func runCaseCmd(cmd *cobra.Command, flags *rootFlags) error {
	if flags.caseID <= 0 {
		return gpioerrors.NewAddressingError("", "a positive case identifier is required (-c)")
	}

	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return err
	}

	mode, err := model.ParseMode(flags.modeTag)
	if err != nil {
		return gpioerrors.NewAddressingError(flags.modeTag, err.Error())
	}

	lc, err := capability.Discover(cfg.SysfsRoot, cfg.ControllerLabel)
	if err != nil {
		return err
	}
	controller := lc.Controller()

	log.WithCase(flags.caseID).WithFields(map[string]any{
		"mode":  mode.String(),
		"base":  controller.BasePin,
		"count": controller.Count,
	}).Info("controller discovered; starting case")

	run := &model.ExecutionContext{
		CaseID:     flags.caseID,
		Mode:       mode,
		BasePin:    controller.BasePin,
		LineCount:  controller.Count,
		PinOffsets: [3]int{flags.pin1, flags.pin2, flags.pin3},
	}

	result, err := executeCase(cmd.Context(), lc, log, run, time.Duration(cfg.Timeout)*time.Second)
	if err != nil {
		return err
	}

	renderResult(cmd.OutOrStdout(), result)
	exitFunc(result.ExitCode())
	return nil
}

// executeCase dispatches the scenario, resolves addressing and runs it.
// Dispatch and addressing failures short-circuit before any capability call.
func executeCase(ctx context.Context, lc capability.Capability, log *logger.Logger, run *model.ExecutionContext, timeout time.Duration) (*model.CaseResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	// An unknown case identifier is reported before addressing is even
	// looked at, so -c 999 fails the same way whatever the mode arguments.
	sc, err := scenario.Lookup(run.CaseID)
	if err != nil {
		return nil, err
	}

	lines, err := addressing.Resolve(run)
	if err != nil {
		return nil, err
	}

	log.WithCase(sc.CaseID).WithFields(map[string]any{
		"name":  sc.Name,
		"lines": fmt.Sprintf("%v", []int(lines)),
	}).Debug("dispatching scenario")

	executor := engine.NewExecutor(lc, log)
	return executor.Run(ctx, sc, run, lines), nil
}
