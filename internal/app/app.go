// Package app wires configuration, logging, metrics and the engine into
// the runnable application and maps run outcomes onto process exit codes.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/primegen/internal/cli"
	"github.com/agbru/primegen/internal/config"
	apperrors "github.com/agbru/primegen/internal/errors"
	"github.com/agbru/primegen/internal/logging"
	"github.com/agbru/primegen/internal/metrics"
	"github.com/agbru/primegen/internal/primes"
	"github.com/agbru/primegen/internal/server"
	"github.com/agbru/primegen/internal/ui"
)

// Application represents the primegen application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Logger    logging.Logger
}

// New creates a new Application instance by parsing command-line arguments.
//
// Parameters:
//   - args: The full argument vector including the program name.
//   - errWriter: The destination for parse errors and runtime diagnostics.
//
// Returns:
//   - *Application: The configured application.
//   - error: A ConfigError if the arguments are invalid.
func New(args []string, errWriter io.Writer) (*Application, error) {
	var cmdArgs []string
	if len(args) > 0 {
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		ErrWriter: errWriter,
		Logger:    logging.NewLogger(errWriter, "primegen"),
	}, nil
}

// Run executes the application based on the configured mode.
//
// Parameters:
//   - ctx: The parent context for the whole run.
//   - out: The writer for standard output.
//
// Returns:
//   - int: The process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sieveMetrics := a.startMetricsServer(ctx)

	if a.Config.Interactive {
		return a.runInteractive(sieveMetrics)
	}
	return a.runGenerate(ctx, out, sieveMetrics)
}

// startMetricsServer starts the optional metrics endpoint and returns the
// instruments the engine should record into. The server stops when ctx is
// canceled.
func (a *Application) startMetricsServer(ctx context.Context) *metrics.SieveMetrics {
	if a.Config.MetricsAddr == "" {
		return metrics.NewSieveMetrics(nil)
	}

	srvMetrics := server.NewMetrics()
	sieveMetrics := metrics.NewSieveMetrics(srvMetrics.Registry())

	srv := server.New(a.Config.MetricsAddr, srvMetrics, a.Logger)
	go func() {
		if err := srv.Start(ctx); err != nil {
			a.Logger.Error("metrics server failed", err)
		}
	}()
	return sieveMetrics
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runInteractive starts the interactive session.
func (a *Application) runInteractive(sieveMetrics *metrics.SieveMetrics) int {
	engine := primes.New(primes.Config{
		SegmentWidth: a.Config.SegmentWidth,
		Workers:      a.Config.Workers,
		Logger:       a.Logger,
		Metrics:      sieveMetrics,
	})
	repl := cli.NewREPL(engine, cli.REPLConfig{
		DefaultMode: a.Config.Mode,
		Timeout:     a.Config.Timeout,
	})
	repl.Start()
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
