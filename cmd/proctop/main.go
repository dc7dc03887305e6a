package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/srodi/proctop/pkg/collector/proctable"
	"github.com/srodi/proctop/pkg/config"
	"github.com/srodi/proctop/pkg/logging"
	"github.com/srodi/proctop/pkg/metrics"
	"github.com/srodi/proctop/pkg/monitor"
	"github.com/srodi/proctop/pkg/report"
	"github.com/srodi/proctop/pkg/terminate"
	"github.com/srodi/proctop/pkg/types"
	"github.com/srodi/proctop/pkg/ui"
)

const (
	exitOK       = 0
	exitFailure  = 1
	exitBadInput = 2
	killSubcmd   = "kill"
	progFallback = "proctop"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run dispatches between the live monitor and the kill subcommand and returns
// the process exit status.
func run(argv []string, stdin, stdout *os.File, stderr io.Writer) int {
	program := progFallback
	if len(argv) > 0 {
		program = filepath.Base(argv[0])
		argv = argv[1:]
	}

	cfg, args, err := config.Parse(program, argv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", program, err)
		return exitBadInput
	}

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", program, err)
		return exitBadInput
	}
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(stderr, "%s: closing log: %v\n", program, err)
		}
	}()

	switch {
	case len(args) == 0:
		if err := runMonitor(cfg, stdin, stdout, logger); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", program, err)
			return exitFailure
		}
		return exitOK
	case args[0] == killSubcmd && len(args) == 2:
		outcome, err := terminate.Run(terminate.ProcessKiller{}, args[1], stdout, stderr)
		if err != nil {
			logger.Debug().Err(err).Str("arg", args[1]).Stringer("outcome", outcome).Msg("kill request failed")
		}
		return outcome.ExitCode()
	case args[0] == killSubcmd:
		fmt.Fprintf(stderr, "usage: %s kill <pid>\n", program)
		return exitBadInput
	default:
		fmt.Fprintf(stderr, "%s: unknown command %q\n", program, args[0])
		fmt.Fprintf(stderr, "usage: %s [flags]\n       %s [flags] kill <pid>\n", program, program)
		return exitBadInput
	}
}

func runMonitor(cfg config.Config, stdin, stdout *os.File, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, err := proctable.NewCollector(cfg.ProcRoot)
	if err != nil {
		return fmt.Errorf("initializing process table: %w", err)
	}
	system := table.CPU()
	policy, err := report.ParseRegressionPolicy(cfg.OnCounterRegression)
	if err != nil {
		return err
	}

	var recorder *metrics.Recorder
	if cfg.MetricsFile != "" {
		recorder = metrics.NewRecorder()
	}

	cleanupTerminal := ui.EnableSingleView(stdout, stdin, logger)
	defer cleanupTerminal()

	var priming *ui.PrimingIndicator
	if ui.IsTerminal(stdout) {
		priming = ui.NewPrimingIndicator(stdout)
		priming.Start()
	}
	defer priming.Stop()

	frameOpts := ui.FrameOptions{Banner: cfg.Banner}
	render := func(rows []types.DerivedRow) error {
		priming.Stop()
		var buf bytes.Buffer
		ui.ClearScreen(&buf)
		if err := ui.RenderFrame(&buf, rows, frameOpts); err != nil {
			return err
		}
		_, err := stdout.Write(buf.Bytes())
		return err
	}

	logger.Info().
		Str("proc_root", cfg.ProcRoot).
		Dur("interval", types.SampleInterval).
		Stringer("on_counter_regression", policy).
		Msg("starting monitor")

	ctrl := monitor.New(system, table, render,
		monitor.WithLogger(logger),
		monitor.WithDeriveOptions(report.Options{Regression: policy}),
		monitor.WithFilter(report.FilterConfig{HideKernel: cfg.HideKernel, TopK: cfg.TopK}),
		monitor.WithMetrics(recorder, cfg.MetricsFile),
	)
	if err := ctrl.Run(ctx); err != nil {
		return err
	}
	logger.Info().Int("cycles", ctrl.Cycles()).Msg("monitor stopped")
	return nil
}
