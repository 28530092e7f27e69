package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/primegen/internal/config"
	"github.com/agbru/primegen/internal/format"
	"github.com/agbru/primegen/internal/metrics"
	"github.com/agbru/primegen/internal/primes"
	"github.com/agbru/primegen/internal/sysmon"
	"github.com/agbru/primegen/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the bound, timeout, environment details, and sieve tuning.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Generating primes up to %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), format.GroupDigits(cfg.N), ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Sieve tuning: segment width %s%d%s, %s%d%s workers.\n",
		ui.ColorCyan(), cfg.SegmentWidth, ui.ColorReset(),
		ui.ColorCyan(), cfg.Workers, ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single mode vs comparison).
//
// Parameters:
//   - modes: The modes that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(modes []string, out io.Writer) {
	var modeDesc string
	if len(modes) > 1 {
		modeDesc = "Parallel comparison of all modes"
	} else {
		modeDesc = fmt.Sprintf("Single run with the %s%s%s mode",
			ui.ColorGreen(), modes[0], ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

// PresentComparisonTable displays the comparison summary table with mode
// names, counts and durations in a formatted tabular layout. Uses manual
// padding to correctly handle ANSI color codes.
func PresentComparisonTable(results []primes.ModeResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	maxModeLen := len("Mode")
	maxCountLen := len("Count")
	maxDurationLen := len("Duration")
	for _, res := range results {
		if len(res.Mode) > maxModeLen {
			maxModeLen = len(res.Mode)
		}
		count := format.GroupDigits(res.Count)
		if len(count) > maxCountLen {
			maxCountLen = len(count)
		}
		duration := format.FormatExecutionDuration(res.Duration)
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	fmt.Fprintf(out, "%sMode%s%s   %sCount%s%s   %sDuration%s\n",
		ui.ColorBold(), ui.ColorReset(), padRight(maxModeLen-len("Mode")),
		ui.ColorBold(), ui.ColorReset(), padRight(maxCountLen-len("Count")),
		ui.ColorBold(), ui.ColorReset())

	for _, res := range results {
		count := format.GroupDigits(res.Count)
		duration := format.FormatExecutionDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s%s%s\n",
			ui.ColorCyan(), res.Mode, ui.ColorReset(), padRight(maxModeLen-len(res.Mode)),
			ui.ColorGreen(), count, ui.ColorReset(), padRight(maxCountLen-len(count)),
			ui.ColorYellow(), duration, ui.ColorReset())
	}
}

// padRight returns a string of n spaces.
func padRight(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", n, "")
}

// DisplayResourceSummary shows process and system resource usage after a
// verbose run.
func DisplayResourceSummary(out io.Writer, delta metrics.Delta, sys sysmon.Stats) {
	fmt.Fprintf(out, "\nResource Summary:\n")
	fmt.Fprintf(out, "  Heap growth:    %.1f MiB\n", float64(delta.HeapAllocBytes)/(1<<20))
	fmt.Fprintf(out, "  GC cycles:      %d\n", delta.GCCycles)
	fmt.Fprintf(out, "  GC pause total: %.2fms\n", float64(delta.GCPauseNs)/1e6)
	fmt.Fprintf(out, "  System:         %s\n", sys.String())
}
