package sieve

import (
	"context"

	"github.com/agbru/primegen/internal/bignum"
)

// trialPrime caches a discovered prime together with its square, so the
// "p <= isqrt(k)" cut-off is a comparison against k instead of a square
// root per candidate.
type trialPrime struct {
	p  bignum.Nat
	sq bignum.Nat
}

// Count counts the primes <= n by trial division. Asymptotically far more
// expensive than the segmented sieve; it serves as the reference mode and
// must agree with SegmentedCount exactly for every n.
func (s *Sieve) Count(ctx context.Context, n bignum.Nat) (bignum.Nat, error) {
	var count uint64
	if err := trialDivide(ctx, n, func(bignum.Nat) { count++ }); err != nil {
		return bignum.Nat{}, err
	}
	return bignum.FromUint64(count), nil
}

// Primes returns every prime <= n in ascending order by trial division.
func (s *Sieve) Primes(ctx context.Context, n bignum.Nat) ([]bignum.Nat, error) {
	primes := []bignum.Nat{}
	if err := trialDivide(ctx, n, func(p bignum.Nat) { primes = append(primes, p) }); err != nil {
		return nil, err
	}
	return primes, nil
}

// trialDivide walks candidates 2..n and yields each prime in order. A
// candidate is prime iff no previously found prime whose square is <= the
// candidate divides it.
func trialDivide(ctx context.Context, n bignum.Nat, yield func(bignum.Nat)) error {
	if n.CmpUint64(2) < 0 {
		return nil
	}

	var found []trialPrime
	steps := 0
	for k := bignum.FromUint64(2); k.Cmp(n) <= 0; k = k.AddUint64(1) {
		steps++
		if steps&1023 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		prime := true
		for i := range found {
			if found[i].sq.Cmp(k) > 0 {
				break
			}
			if _, r := k.DivMod(found[i].p); r.IsZero() {
				prime = false
				break
			}
		}
		if prime {
			found = append(found, trialPrime{p: k, sq: k.Mul(k)})
			yield(k)
		}
	}
	return nil
}
