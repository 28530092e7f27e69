package sieve

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/semaphore"

	"github.com/agbru/primegen/internal/bignum"
	"github.com/agbru/primegen/internal/dispatch"
	apperrors "github.com/agbru/primegen/internal/errors"
)

// segment is the per-window result slot. The slice of segments is allocated
// up front, before any task runs, so the merge phase iterates by index and
// is deterministic regardless of task completion order.
type segment struct {
	low bignum.Nat // inclusive lower bound of the window
	// count is the number of unmarked (prime) offsets in the window.
	count uint64
	// offsets holds the prime offsets relative to low, ascending. Only
	// populated in list mode.
	offsets []uint64
}

// SegmentedCount counts the primes <= n using the segmented sieve.
func (s *Sieve) SegmentedCount(ctx context.Context, n bignum.Nat) (bignum.Nat, error) {
	var count uint64
	err := s.runSegmented(ctx, n, false, func(base []uint64, segments []segment) {
		count = uint64(len(base))
		for i := range segments {
			count += segments[i].count
		}
	})
	if err != nil {
		return bignum.Nat{}, err
	}
	return bignum.FromUint64(count), nil
}

// SegmentedPrimes returns every prime <= n in ascending order using the
// segmented sieve.
func (s *Sieve) SegmentedPrimes(ctx context.Context, n bignum.Nat) ([]bignum.Nat, error) {
	var primes []bignum.Nat
	err := s.runSegmented(ctx, n, true, func(base []uint64, segments []segment) {
		total := uint64(len(base))
		for i := range segments {
			total += segments[i].count
		}
		primes = make([]bignum.Nat, 0, total)
		for _, p := range base {
			primes = append(primes, bignum.FromUint64(p))
		}
		// Merge strictly in ascending segment index, never completion order.
		for i := range segments {
			for _, off := range segments[i].offsets {
				primes = append(primes, segments[i].low.AddUint64(off))
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if primes == nil {
		primes = []bignum.Nat{}
	}
	return primes, nil
}

// runSegmented drives the full segmented pipeline: base sieve, partition,
// concurrent dispatch, join, then a deterministic index-ordered merge
// handed to the collector. On any error no partial results reach the
// collector.
func (s *Sieve) runSegmented(ctx context.Context, n bignum.Nat, wantList bool, collect func(base []uint64, segments []segment)) error {
	if n.CmpUint64(2) < 0 {
		collect(nil, nil)
		return nil
	}

	// For n < 4 the bound computation degenerates (isqrt(n) <= 1); the
	// base sieve over [2, n] alone suffices and no segments are dispatched.
	if n.CmpUint64(4) < 0 {
		nv, _ := n.Uint64()
		collect(basePrimes(nv), nil)
		return nil
	}

	bound, ok := n.Isqrt().Uint64()
	if !ok || bound > maxSieveBound {
		return apperrors.CalculationError{Cause: fmt.Errorf("sieve bound isqrt(n) exceeds the feasible base-sieve range")}
	}
	base := basePrimes(bound)

	// Partition (bound, n] into windows of SegmentWidth.
	span := n.SubUint64(bound)
	quot, rem := span.DivModUint64(s.cfg.SegmentWidth)
	full, ok := quot.Uint64()
	if !ok || full > uint64(math.MaxInt32) {
		return apperrors.CalculationError{Cause: fmt.Errorf("range too large to partition into segments")}
	}
	numSegments := int(full)
	if rem != 0 {
		numSegments++
	}

	segments := make([]segment, numSegments)
	if s.cfg.Progress != nil {
		s.cfg.Progress(0, numSegments)
	}

	queue := dispatch.New(s.cfg.Workers)
	defer queue.Shutdown()
	sem := semaphore.NewWeighted(int64(s.cfg.Inflight))

	var completed atomic.Int64
	nPlusOne := n.AddUint64(1)
	low := bignum.FromUint64(bound + 1)
	var dispatchErr error
	for i := 0; i < numSegments; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			dispatchErr = err
			break
		}

		high := low.AddUint64(s.cfg.SegmentWidth)
		if high.Cmp(nPlusOne) > 0 {
			high = nPlusOne
		}
		width, _ := high.Sub(low).Uint64()

		seg := &segments[i]
		seg.low = low
		segLow, segWidth := low, width
		queue.Dispatch(func() error {
			defer sem.Release(1)
			if err := sieveSegment(ctx, base, segLow, segWidth, seg, wantList); err != nil {
				return err
			}
			if s.cfg.Progress != nil {
				s.cfg.Progress(int(completed.Add(1)), numSegments)
			}
			return nil
		})

		low = high
	}

	if err := queue.Join(); err != nil {
		return apperrors.CalculationError{Cause: err}
	}
	if dispatchErr != nil {
		return apperrors.WrapError(dispatchErr, "segment dispatch aborted")
	}

	collect(base, segments)
	return nil
}

// sieveSegment marks every composite in the half-open window
// [low, low+width) against the shared read-only base primes, then extracts
// the surviving offsets into the segment's result slot.
func sieveSegment(ctx context.Context, base []uint64, low bignum.Nat, width uint64, seg *segment, wantList bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	marks := bitset.New(uint(width))
	for i, p := range base {
		if i&255 == 255 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		// First multiple of p at or above low, as a window offset. Every
		// multiple of p inside the window is composite because low > p.
		_, r := low.DivModUint64(p)
		var off uint64
		if r != 0 {
			off = p - r
		}
		for ; off < width; off += p {
			marks.Set(uint(off))
		}
	}

	if wantList {
		seg.count = width - uint64(marks.Count())
		offsets := make([]uint64, 0, seg.count)
		for i, ok := marks.NextClear(0); ok && uint64(i) < width; i, ok = marks.NextClear(i + 1) {
			offsets = append(offsets, uint64(i))
		}
		seg.offsets = offsets
	} else {
		seg.count = width - uint64(marks.Count())
	}
	return nil
}
