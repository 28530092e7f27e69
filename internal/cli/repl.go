package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/agbru/primegen/internal/format"
	"github.com/agbru/primegen/internal/primes"
	"github.com/agbru/primegen/internal/ui"
)

// REPLConfig holds configuration for the interactive session.
type REPLConfig struct {
	// DefaultMode is the mode used for bare-number commands.
	DefaultMode string
	// Timeout is the maximum duration for each run.
	Timeout time.Duration
}

// REPL is an interactive prime generation session.
type REPL struct {
	config      REPLConfig
	engine      *primes.Engine
	currentMode string
	in          io.Reader
	out         io.Writer
}

// NewREPL creates a new interactive session around an engine.
//
// Parameters:
//   - engine: The engine used for every run.
//   - config: Session configuration.
//
// Returns:
//   - *REPL: A new session reading stdin and writing stdout.
func NewREPL(engine *primes.Engine, config REPLConfig) *REPL {
	mode := config.DefaultMode
	if mode == "" {
		mode = primes.ModeSegmentedCount
	}
	return &REPL{
		config:      config,
		engine:      engine,
		currentMode: mode,
		in:          os.Stdin,
		out:         os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive session. It continuously reads user input
// and processes commands until the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"primegen> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%sPrime Generator - Interactive Mode%s\n\n", ui.ColorBold(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %scount <n>%s    - Count primes up to n with the current mode\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %ssieve <n>%s    - List primes up to n with the current mode\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %smode <name>%s  - Change mode (%s)\n", ui.ColorYellow(), ui.ColorReset(), strings.Join(primes.AllModes, ", "))
	fmt.Fprintf(r.out, "  %sall <n>%s      - Compare every mode for the bound n\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s       - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s         - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s - Leave interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the session should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "count", "c":
		r.cmdCount(args)
	case "sieve", "s":
		r.cmdSieve(args)
	case "mode", "m":
		r.cmdMode(args)
	case "all", "cmp":
		r.cmdAll(args)
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// Bare decimal input counts with the current mode.
		if isDecimal(cmd) {
			r.cmdCount([]string{cmd})
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}

	return true
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (r *REPL) cmdCount(args []string) {
	bound, ok := r.boundArg(args, "count")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	mode := r.countMode()
	start := time.Now()
	var (
		count string
		err   error
	)
	if mode == primes.ModeCount {
		count, err = r.engine.Count(ctx, bound)
	} else {
		count, err = r.engine.SegmentedCount(ctx, bound)
	}
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	DisplayCountResult(r.out, bound, count, mode, time.Since(start))
}

func (r *REPL) cmdSieve(args []string) {
	bound, ok := r.boundArg(args, "sieve")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	mode := r.sieveMode()
	start := time.Now()
	var (
		list []string
		err  error
	)
	if mode == primes.ModeSieve {
		list, err = r.engine.Sieve(ctx, bound)
	} else {
		list, err = r.engine.SegmentedSieve(ctx, bound)
	}
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	DisplayPrimes(r.out, bound, list, mode, time.Since(start))
}

func (r *REPL) cmdMode(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "Current mode: %s%s%s\n", ui.ColorCyan(), r.currentMode, ui.ColorReset())
		return
	}
	name := strings.ToLower(args[0])
	for _, m := range primes.AllModes {
		if m == name {
			r.currentMode = name
			fmt.Fprintf(r.out, "Mode set to %s%s%s.\n", ui.ColorGreen(), name, ui.ColorReset())
			return
		}
	}
	fmt.Fprintf(r.out, "%sUnknown mode: %s%s (valid: %s)\n",
		ui.ColorRed(), name, ui.ColorReset(), strings.Join(primes.AllModes, ", "))
}

func (r *REPL) cmdAll(args []string) {
	bound, ok := r.boundArg(args, "all")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	results, err := primes.RunComparison(ctx, r.engine, bound, primes.AllModes)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	PresentComparisonTable(results, r.out)
	if err := primes.CheckAgreement(results); err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "%sAll modes agree: %s primes.%s\n",
		ui.ColorGreen(), format.GroupDigits(results[0].Count), ui.ColorReset())
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "Mode:    %s%s%s\n", ui.ColorCyan(), r.currentMode, ui.ColorReset())
	fmt.Fprintf(r.out, "Timeout: %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
}

// boundArg validates the single decimal argument of a run command.
func (r *REPL) boundArg(args []string, usage string) (string, bool) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: %s <n>%s\n", ui.ColorRed(), usage, ui.ColorReset())
		return "", false
	}
	if !isDecimal(args[0]) {
		fmt.Fprintf(r.out, "%sInvalid bound: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return "", false
	}
	return args[0], true
}

// countMode maps the current mode onto its counting variant.
func (r *REPL) countMode() string {
	if r.currentMode == primes.ModeCount || r.currentMode == primes.ModeSieve {
		return primes.ModeCount
	}
	return primes.ModeSegmentedCount
}

// sieveMode maps the current mode onto its listing variant.
func (r *REPL) sieveMode() string {
	if r.currentMode == primes.ModeCount || r.currentMode == primes.ModeSieve {
		return primes.ModeSieve
	}
	return primes.ModeSegmentedSieve
}
