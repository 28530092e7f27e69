package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a run duration for display. Short runs
// show microseconds or milliseconds; runs of a second or more round to the
// millisecond so timings stay readable next to each other in comparison
// tables.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.Round(time.Millisecond).String()
	}
}
