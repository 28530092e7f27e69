package primes

import (
	"context"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/primegen/internal/errors"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestRunComparisonAllModesAgree(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newTestEngine()

	for _, n := range []string{"0", "1", "2", "30", "100", "541"} {
		results, err := RunComparison(ctx, e, n, AllModes)
		require.NoError(t, err, "RunComparison(%s)", n)
		require.Len(t, results, len(AllModes))

		for i, mode := range AllModes {
			assert.Equal(t, mode, results[i].Mode)
		}
		assert.NoError(t, CheckAgreement(results), "modes disagree for n=%s", n)
	}
}

func TestRunComparisonInvalidBound(t *testing.T) {
	t.Parallel()

	_, err := RunComparison(context.Background(), newTestEngine(), "abc", AllModes)
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidInput(err))
}

func TestRunComparisonUnknownMode(t *testing.T) {
	t.Parallel()

	_, err := RunComparison(context.Background(), newTestEngine(), "10", []string{"quantum"})
	require.Error(t, err)

	var cfgErr apperrors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestCheckAgreement(t *testing.T) {
	t.Parallel()

	t.Run("counts disagree", func(t *testing.T) {
		results := []ModeResult{
			{Mode: ModeCount, Count: "25"},
			{Mode: ModeSegmentedCount, Count: "24"},
		}
		err := CheckAgreement(results)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrResultMismatch)
	})

	t.Run("lists diverge at an index", func(t *testing.T) {
		results := []ModeResult{
			{Mode: ModeSieve, Count: "3", Primes: []string{"2", "3", "5"}},
			{Mode: ModeSegmentedSieve, Count: "3", Primes: []string{"2", "3", "7"}},
		}
		err := CheckAgreement(results)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrResultMismatch)
		assert.Contains(t, err.Error(), "index 2")
	})

	t.Run("single result trivially agrees", func(t *testing.T) {
		assert.NoError(t, CheckAgreement([]ModeResult{{Mode: ModeCount, Count: "25"}}))
	})

	t.Run("count and list modes cross-check", func(t *testing.T) {
		results := []ModeResult{
			{Mode: ModeCount, Count: "3"},
			{Mode: ModeSegmentedSieve, Count: "3", Primes: []string{"2", "3", "5"}},
		}
		assert.NoError(t, CheckAgreement(results))
	})
}
