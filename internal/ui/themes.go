package ui

import (
	"os"
	"sync"
)

// Theme holds the ANSI escape codes for one color scheme. A zero value in
// any field renders that category without formatting.
type Theme struct {
	// Name identifies the theme ("dark", "light", "none").
	Name string
	// Primary highlights the main result values.
	Primary string
	// Secondary de-emphasizes auxiliary text.
	Secondary string
	// Success marks completed runs and agreement messages.
	Success string
	// Warning marks non-fatal conditions.
	Warning string
	// Error marks failures.
	Error string
	// Info marks neutral informational values.
	Info string
	// Bold enables bold text.
	Bold string
	// Reset clears all attributes.
	Reset string
}

var (
	// DarkTheme targets dark terminal backgrounds with bright accents.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;45m",  // Cyan-blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Info:      "\033[38;5;117m", // Sky blue
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// LightTheme targets light backgrounds with darker tones.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;25m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Info:      "\033[38;5;24m",  // Teal
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme leaves every category unformatted. Selected when the
	// NO_COLOR environment variable is set or --no-color is passed.
	NoColorTheme = Theme{
		Name: "none",
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the active theme. Safe for concurrent use.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme selects the active theme by name. Unknown names fall back to
// the dark theme.
//
// Parameters:
//   - name: One of "dark", "light" or "none".
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch name {
	case "light":
		currentTheme = LightTheme
	case "none":
		currentTheme = NoColorTheme
	default:
		currentTheme = DarkTheme
	}
}

// InitTheme picks the startup theme. Color is disabled when noColor is
// true or when NO_COLOR is present in the environment with any value,
// following https://no-color.org/.
//
// Parameters:
//   - noColor: Disables color output regardless of the environment.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DarkTheme
}
