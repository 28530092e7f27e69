package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/primegen/internal/cli"
	apperrors "github.com/agbru/primegen/internal/errors"
	"github.com/agbru/primegen/internal/logging"
	"github.com/agbru/primegen/internal/metrics"
	"github.com/agbru/primegen/internal/primes"
	"github.com/agbru/primegen/internal/sysmon"
	"github.com/agbru/primegen/internal/ui"
)

// runGenerate orchestrates a single generation run or the all-mode
// comparison, including lifecycle, progress and output handling.
func (a *Application) runGenerate(ctx context.Context, out io.Writer, sieveMetrics *metrics.SieveMetrics) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	modes := []string{a.Config.Mode}
	if a.Config.All {
		modes = primes.AllModes
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(modes, out)
	}

	// A live progress bar only makes sense for a single segmented run;
	// concurrent modes would interleave their segment totals.
	var reporter *cli.ProgressReporter
	if !a.Config.Quiet && !a.Config.All && isSegmented(a.Config.Mode) {
		reporter = cli.NewProgressReporter(out)
	}

	engine := primes.New(primes.Config{
		SegmentWidth: a.Config.SegmentWidth,
		Workers:      a.Config.Workers,
		Progress:     reporter.Func(),
		Logger:       a.Logger,
		Metrics:      sieveMetrics,
	})

	memBefore := metrics.NewMemoryCollector().Snapshot()

	var code int
	if a.Config.All {
		code = a.runComparison(ctx, engine, out)
	} else {
		code = a.runSingleMode(ctx, engine, reporter, out)
	}

	if a.Config.Verbose && code == apperrors.ExitSuccess {
		memAfter := metrics.NewMemoryCollector().Snapshot()
		cli.DisplayResourceSummary(out, memAfter.Since(memBefore), sysmon.Sample())
	}
	return code
}

func isSegmented(mode string) bool {
	return mode == primes.ModeSegmentedCount || mode == primes.ModeSegmentedSieve
}

func isListMode(mode string) bool {
	return mode == primes.ModeSieve || mode == primes.ModeSegmentedSieve
}

// runSingleMode executes one mode and presents its result.
func (a *Application) runSingleMode(ctx context.Context, engine *primes.Engine, reporter *cli.ProgressReporter, out io.Writer) int {
	mode := a.Config.Mode
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}

	start := time.Now()
	if isListMode(mode) {
		var (
			list []string
			err  error
		)
		if mode == primes.ModeSieve {
			list, err = engine.Sieve(ctx, a.Config.N)
		} else {
			list, err = engine.SegmentedSieve(ctx, a.Config.N)
		}
		reporter.Stop()
		if err != nil {
			return a.handleRunError(err)
		}
		duration := time.Since(start)

		if a.Config.Quiet {
			cli.DisplayQuietPrimes(out, list)
		} else {
			cli.DisplayPrimes(out, a.Config.N, list, mode, duration)
		}
		return a.savePrimes(list, mode, duration, outputCfg, out)
	}

	var (
		count string
		err   error
	)
	if mode == primes.ModeCount {
		count, err = engine.Count(ctx, a.Config.N)
	} else {
		count, err = engine.SegmentedCount(ctx, a.Config.N)
	}
	reporter.Stop()
	if err != nil {
		return a.handleRunError(err)
	}

	if a.Config.Quiet {
		cli.DisplayQuietCount(out, count)
	} else {
		cli.DisplayCountResult(out, a.Config.N, count, mode, time.Since(start))
	}
	return apperrors.ExitSuccess
}

// runComparison executes every mode concurrently and cross-checks results.
func (a *Application) runComparison(ctx context.Context, engine *primes.Engine, out io.Writer) int {
	results, err := primes.RunComparison(ctx, engine, a.Config.N, primes.AllModes)
	if err != nil {
		return a.handleRunError(err)
	}

	if a.Config.Quiet {
		cli.DisplayQuietCount(out, results[0].Count)
	} else {
		cli.PresentComparisonTable(results, out)
	}

	if err := primes.CheckAgreement(results); err != nil {
		return a.handleRunError(err)
	}
	if !a.Config.Quiet {
		fmt.Fprintf(out, "\n%sAll modes agree.%s\n", ui.ColorGreen(), ui.ColorReset())
	}

	if a.Config.OutputFile != "" {
		outputCfg := cli.OutputConfig{
			OutputFile: a.Config.OutputFile,
			Quiet:      a.Config.Quiet,
			Verbose:    a.Config.Verbose,
		}
		for _, res := range results {
			if res.Primes != nil {
				return a.savePrimes(res.Primes, res.Mode, res.Duration, outputCfg, out)
			}
		}
	}
	return apperrors.ExitSuccess
}

// savePrimes writes the list to the configured output file, if any.
func (a *Application) savePrimes(list []string, mode string, duration time.Duration, cfg cli.OutputConfig, out io.Writer) int {
	if cfg.OutputFile == "" {
		return apperrors.ExitSuccess
	}
	if err := cli.WritePrimesToFile(list, a.Config.N, mode, duration, cfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving primes: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if !cfg.Quiet {
		cli.ConfirmFileSaved(out, cfg.OutputFile)
	}
	return apperrors.ExitSuccess
}

// handleRunError reports err to the user and maps it onto an exit code.
func (a *Application) handleRunError(err error) int {
	fmt.Fprintf(a.ErrWriter, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())

	switch {
	case apperrors.IsInvalidInput(err):
		return apperrors.ExitErrorConfig
	case errors.Is(err, apperrors.ErrResultMismatch):
		a.Logger.Error("modes disagree", err, logging.String("bound", a.Config.N))
		return apperrors.ExitErrorMismatch
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return apperrors.ExitErrorCanceled
	default:
		return apperrors.ExitErrorGeneric
	}
}
