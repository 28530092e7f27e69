// Package cli implements the command-line presentation layer: result
// display, progress reporting, the comparison table, shell completion and
// the interactive mode.
//
// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayCountResult], [DisplayPrimes], [DisplayQuietCount].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatCount].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WritePrimesToFile].
package cli
