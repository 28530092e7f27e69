// Package apperrors defines the structured error types used across the
// prime generator and the process exit codes they map onto. Each class of
// failure (configuration, invalid input, calculation, timeout) has its own
// type so callers can branch with errors.As, and every wrapping type
// implements Unwrap so errors.Is reaches the underlying cause.
package apperrors
