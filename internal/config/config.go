// Package config defines the application configuration and its resolution
// chain: CLI flags take priority over environment variables, which take
// priority over adaptive hardware defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/primegen/internal/errors"
)

// EnvPrefix is prepended to every environment variable key.
const EnvPrefix = "PRIMEGEN_"

// DefaultTimeout bounds a single run unless overridden.
const DefaultTimeout = 10 * time.Minute

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// N is the inclusive upper bound as a decimal string.
	N string
	// Mode selects the generation strategy: count, segmented_count,
	// sieve or segmented_sieve.
	Mode string
	// All runs every mode and cross-checks their results.
	All bool
	// SegmentWidth is the sieve window size; 0 selects an adaptive default.
	SegmentWidth uint64
	// Workers is the sieving goroutine count; 0 selects an adaptive default.
	Workers int
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Quiet suppresses progress and decoration, printing results only.
	Quiet bool
	// Verbose enables debug logging and the resource usage summary.
	Verbose bool
	// NoColor disables ANSI colors in terminal output.
	NoColor bool
	// OutputFile, when non-empty, receives the generated primes.
	OutputFile string
	// MetricsAddr, when non-empty, serves Prometheus metrics on that address.
	MetricsAddr string
	// Interactive starts the interactive session instead of a single run.
	Interactive bool
	// Completion, when non-empty, prints a completion script for that shell
	// and exits.
	Completion string
}

// validModes maps every accepted --mode value.
var validModes = map[string]bool{
	"count":           true,
	"segmented_count": true,
	"sieve":           true,
	"segmented_sieve": true,
}

// ParseConfig parses the command line and environment into an AppConfig.
// Flag errors and usage output go to errWriter.
//
// Parameters:
//   - args: The raw command-line arguments, without the program name.
//   - errWriter: The destination for flag parsing errors and usage text.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A ConfigError if parsing or validation fails.
func ParseConfig(args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet("primegen", flag.ContinueOnError)
	fs.SetOutput(errWriter)

	config := AppConfig{}
	fs.StringVar(&config.N, "n", "1000000", "Upper bound (inclusive) as a decimal string")
	fs.StringVar(&config.Mode, "mode", "segmented_count", "Generation mode: count, segmented_count, sieve, segmented_sieve")
	fs.BoolVar(&config.All, "all", false, "Run every mode and cross-check the results")
	fs.Uint64Var(&config.SegmentWidth, "segment-width", 0, "Candidates per sieve window (0 = adaptive)")
	fs.IntVar(&config.Workers, "workers", 0, "Sieving goroutines (0 = all CPUs)")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Global timeout for the run")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print results only")
	fs.BoolVar(&config.Quiet, "q", false, "Print results only (shorthand)")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging and resource summary")
	fs.BoolVar(&config.Verbose, "v", false, "Enable debug logging (shorthand)")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output")
	fs.StringVar(&config.OutputFile, "output", "", "Write generated primes to this file")
	fs.StringVar(&config.OutputFile, "o", "", "Write generated primes to this file (shorthand)")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start interactive mode")
	fs.BoolVar(&config.Interactive, "i", false, "Start interactive mode (shorthand)")
	fs.StringVar(&config.Completion, "completion", "", "Generate a completion script: bash, zsh or fish")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("invalid arguments: %v", err)
	}

	applyEnvOverrides(&config, fs)
	config = ApplyAdaptiveDefaults(config)

	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks invariants that the flag package cannot express.
func (c AppConfig) Validate() error {
	if !validModes[c.Mode] {
		return apperrors.NewConfigError("unknown mode %q (valid: count, segmented_count, sieve, segmented_sieve)", c.Mode)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("workers must be >= 0, got %d", c.Workers)
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("quiet and verbose are mutually exclusive")
	}
	return nil
}

// Summary renders the effective configuration for verbose startup logging.
func (c AppConfig) Summary() string {
	mode := c.Mode
	if c.All {
		mode = "all"
	}
	return fmt.Sprintf("n=%s mode=%s segment-width=%d workers=%d timeout=%s",
		c.N, mode, c.SegmentWidth, c.Workers, c.Timeout)
}
