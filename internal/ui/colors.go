package ui

// Color accessor functions return the escape code for the named color in
// the currently active theme. Presentation code calls these instead of
// reading Theme fields so theme switches take effect immediately.

// ColorGreen returns the success color code.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorRed returns the error color code.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorYellow returns the warning color code.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorCyan returns the informational color code.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorMagenta returns the primary accent color code.
func ColorMagenta() string { return GetCurrentTheme().Primary }

// ColorGrey returns the secondary color code.
func ColorGrey() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the reset code.
func ColorReset() string { return GetCurrentTheme().Reset }
