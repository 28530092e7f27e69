package sieve

import (
	"github.com/bits-and-blooms/bitset"
)

// basePrimes runs the serial boolean sieve over [2, bound] and returns the
// primes in ascending order. The range up to isqrt(n) is small relative to
// n, so no parallelism is warranted here.
func basePrimes(bound uint64) []uint64 {
	if bound < 2 {
		return nil
	}

	composite := bitset.New(uint(bound + 1))
	for p := uint64(2); p*p <= bound; p++ {
		if composite.Test(uint(p)) {
			continue
		}
		for m := p * p; m <= bound; m += p {
			composite.Set(uint(m))
		}
	}

	primes := make([]uint64, 0, primeCountEstimate(bound))
	for p := uint64(2); p <= bound; p++ {
		if !composite.Test(uint(p)) {
			primes = append(primes, p)
		}
	}
	return primes
}

// primeCountEstimate over-approximates pi(bound) for slice preallocation.
// pi(x) < 1.3 * x/ln(x) for x >= 17; the bit-length quotient below is a
// cheap integer stand-in for x/ln(x).
func primeCountEstimate(bound uint64) int {
	if bound < 17 {
		return 8
	}
	bits := 0
	for v := bound; v > 0; v >>= 1 {
		bits++
	}
	return int(2 * bound / uint64(bits))
}
