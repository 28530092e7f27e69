package primes

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/primegen/internal/errors"
)

// ModeResult is the outcome of one strategy in a comparison run.
type ModeResult struct {
	Mode     string
	Count    string
	Primes   []string
	Duration time.Duration
}

// RunComparison runs the given modes concurrently against the same bound
// and returns their results in mode order. The first failure cancels the
// remaining modes.
func RunComparison(ctx context.Context, e *Engine, n string, modes []string) ([]ModeResult, error) {
	results := make([]ModeResult, len(modes))

	g, gctx := errgroup.WithContext(ctx)
	for i, mode := range modes {
		i, mode := i, mode
		g.Go(func() error {
			start := time.Now()
			res, err := runMode(gctx, e, mode, n)
			if err != nil {
				return fmt.Errorf("mode %s: %w", mode, err)
			}
			res.Duration = time.Since(start)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runMode(ctx context.Context, e *Engine, mode, n string) (ModeResult, error) {
	res := ModeResult{Mode: mode}
	switch mode {
	case ModeCount:
		count, err := e.Count(ctx, n)
		if err != nil {
			return res, err
		}
		res.Count = count
	case ModeSegmentedCount:
		count, err := e.SegmentedCount(ctx, n)
		if err != nil {
			return res, err
		}
		res.Count = count
	case ModeSieve:
		primes, err := e.Sieve(ctx, n)
		if err != nil {
			return res, err
		}
		res.Primes = primes
		res.Count = strconv.Itoa(len(primes))
	case ModeSegmentedSieve:
		primes, err := e.SegmentedSieve(ctx, n)
		if err != nil {
			return res, err
		}
		res.Primes = primes
		res.Count = strconv.Itoa(len(primes))
	default:
		return res, apperrors.NewConfigError(fmt.Sprintf("unknown mode %q", mode))
	}
	return res, nil
}

// CheckAgreement verifies that every result reports the same count and that
// any produced prime lists are identical element for element.
func CheckAgreement(results []ModeResult) error {
	if len(results) < 2 {
		return nil
	}

	first := results[0]
	for _, r := range results[1:] {
		if r.Count != first.Count {
			return fmt.Errorf("%w: mode %s found %s primes, mode %s found %s",
				apperrors.ErrResultMismatch, first.Mode, first.Count, r.Mode, r.Count)
		}
	}

	var reference *ModeResult
	for i := range results {
		if results[i].Primes == nil {
			continue
		}
		if reference == nil {
			reference = &results[i]
			continue
		}
		for j := range reference.Primes {
			if reference.Primes[j] != results[i].Primes[j] {
				return fmt.Errorf("%w: modes %s and %s diverge at index %d (%s vs %s)",
					apperrors.ErrResultMismatch, reference.Mode, results[i].Mode,
					j, reference.Primes[j], results[i].Primes[j])
			}
		}
	}
	return nil
}
