// Package bignum implements an arbitrary-precision unsigned integer (Nat)
// over base-2^32 limbs. It provides exactly the arithmetic the sieve needs:
// decimal parsing and formatting, schoolbook add/sub/mul/divmod, comparison,
// bit shifts and an integer square root.
//
// Values are immutable: every operation returns a new Nat, so a Nat can be
// shared across goroutines without synchronization.
package bignum
