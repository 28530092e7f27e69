package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/primegen/internal/format"
	"github.com/agbru/primegen/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save generated primes (empty for no file output).
	OutputFile string
	// Quiet mode suppresses decoration, printing bare results for scripting.
	Quiet bool
	// Verbose shows additional run details.
	Verbose bool
}

// FormatCount returns a prime count with thousands separators.
func FormatCount(count string) string {
	return format.GroupDigits(count)
}

// DisplayCountResult shows a counting result with its timing.
//
// Parameters:
//   - out: The output writer.
//   - bound: The decimal upper bound.
//   - count: The decimal prime count.
//   - mode: The mode that produced the result.
//   - duration: The run duration.
func DisplayCountResult(out io.Writer, bound, count, mode string, duration time.Duration) {
	fmt.Fprintf(out, "π(%s%s%s) = %s%s%s\n",
		ui.ColorMagenta(), format.GroupDigits(bound), ui.ColorReset(),
		ui.ColorGreen(), format.GroupDigits(count), ui.ColorReset())
	fmt.Fprintf(out, "Computed with %s%s%s in %s%s%s.\n",
		ui.ColorCyan(), mode, ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset())
}

// DisplayQuietCount prints a bare count, suitable for scripting.
func DisplayQuietCount(out io.Writer, count string) {
	fmt.Fprintln(out, count)
}

// DisplayPrimes shows a generated prime list, one prime per line, preceded
// by a summary header.
//
// Parameters:
//   - out: The output writer.
//   - bound: The decimal upper bound.
//   - primes: The generated primes in ascending order.
//   - mode: The mode that produced the result.
//   - duration: The run duration.
func DisplayPrimes(out io.Writer, bound string, primes []string, mode string, duration time.Duration) {
	fmt.Fprintf(out, "%s%s%s primes up to %s%s%s (%s, %s):\n",
		ui.ColorGreen(), format.GroupDigits(fmt.Sprintf("%d", len(primes))), ui.ColorReset(),
		ui.ColorMagenta(), format.GroupDigits(bound), ui.ColorReset(),
		mode, format.FormatExecutionDuration(duration))
	DisplayQuietPrimes(out, primes)
}

// DisplayQuietPrimes prints primes one per line with no decoration.
func DisplayQuietPrimes(out io.Writer, primes []string) {
	w := bufio.NewWriter(out)
	for _, p := range primes {
		fmt.Fprintln(w, p)
	}
	_ = w.Flush()
}

// WritePrimesToFile writes a generated prime list to a file with a
// commented header describing the run.
//
// Parameters:
//   - primes: The generated primes in ascending order.
//   - bound: The decimal upper bound.
//   - mode: The mode that produced the result.
//   - duration: The run duration.
//   - config: Output configuration; no-op when OutputFile is empty.
//
// Returns:
//   - error: An error if the file cannot be written.
func WritePrimesToFile(primes []string, bound, mode string, duration time.Duration, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "# Prime Generation Result\n")
	fmt.Fprintf(w, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(w, "# Mode: %s\n", mode)
	fmt.Fprintf(w, "# Duration: %s\n", duration)
	fmt.Fprintf(w, "# Bound: %s\n", bound)
	fmt.Fprintf(w, "# Count: %d\n", len(primes))
	fmt.Fprintf(w, "\n")

	for _, p := range primes {
		fmt.Fprintln(w, p)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// ConfirmFileSaved tells the user where their primes went.
func ConfirmFileSaved(out io.Writer, path string) {
	fmt.Fprintf(out, "\n%s✓ Primes saved to: %s%s%s\n",
		ui.ColorGreen(), ui.ColorCyan(), path, ui.ColorReset())
}
