package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between modes.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ErrResultMismatch is the sentinel error reported when two generation modes
// disagree on the primes below the same bound. A disagreement always means a
// bug in one of the modes, never a recoverable condition.
var ErrResultMismatch = errors.New("result mismatch between modes")

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// InvalidInputError reports a malformed decimal input string. It is returned
// before any sieve work begins, so a caller receiving it can be certain that
// no partial results were produced.
type InvalidInputError struct {
	// Input is the offending input string, possibly truncated for display.
	Input string
	// Reason explains why the input was rejected.
	Reason string
}

// Error returns a formatted message describing the invalid input.
//
// Returns:
//   - string: The error message string.
func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

// NewInvalidInputError creates a new InvalidInputError for the given input.
// Long inputs are truncated so error messages stay readable when callers pass
// in very large decimal strings.
//
// Parameters:
//   - input: The rejected input string.
//   - reason: A human-readable explanation of the rejection.
//
// Returns:
//   - error: A new InvalidInputError instance.
func NewInvalidInputError(input, reason string) error {
	const maxShown = 32
	if len(input) > maxShown {
		input = input[:maxShown] + "..."
	}
	return InvalidInputError{Input: input, Reason: reason}
}

// IsInvalidInput reports whether the error chain contains an InvalidInputError.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is an invalid-input error.
func IsInvalidInput(err error) bool {
	var iie InvalidInputError
	return errors.As(err, &iie)
}

// CalculationError encapsulates a sieve or counting failure while preserving
// the original cause. This allows for structured error handling and inspection
// of what went wrong during prime generation.
type CalculationError struct {
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the CalculationError.
func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError represents a calculation timeout. It captures the operation
// name and the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
//
// Returns:
//   - string: The error message string.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
