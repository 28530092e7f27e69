// Package primes exposes the prime generation engine behind a decimal
// string API. Bounds arrive and leave as base-10 strings so callers never
// handle limb representations; the engine validates input, delegates to the
// sieve, and records traces and metrics around each operation.
package primes
