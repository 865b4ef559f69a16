// SPDX-License-Identifier: MIT

package novelty_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsort/core"
	"github.com/katalvlaran/lvsort/internal/sorttest"
	"github.com/katalvlaran/lvsort/novelty"
)

// TestSpaghetti_Corpus runs Spaghetti over the shared corpus.
func TestSpaghetti_Corpus(t *testing.T) {
	for _, tc := range append(sorttest.Cases(), sorttest.Signed()...) {
		t.Run(tc.Name, func(t *testing.T) {
			orig := slices.Clone(tc.In)
			got := novelty.Spaghetti(tc.In)
			sorttest.CheckSorted(t, tc.In, got)
			assert.Equal(t, orig, tc.In)
		})
	}
}

// TestSpaghetti_Stable checks that the last maximum is pulled first.
func TestSpaghetti_Stable(t *testing.T) {
	sorttest.CheckStable(t, novelty.SpaghettiFunc(sorttest.StabilityInput(80), sorttest.ByKey))
}

// TestSleep_Corpus runs the simulation over the non-negative corpus.
func TestSleep_Corpus(t *testing.T) {
	for _, tc := range sorttest.Cases() {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := novelty.Sleep(tc.In)
			require.NoError(t, err)
			sorttest.CheckSorted(t, tc.In, got)
		})
	}
}

// TestSleep_Errors covers negative input and the clock budget.
func TestSleep_Errors(t *testing.T) {
	_, err := novelty.Sleep([]int{1, -1})
	assert.ErrorIs(t, err, novelty.ErrNegativeInput)

	_, err = novelty.Sleep([]int{1, 100}, core.WithMaxAux(100))
	assert.ErrorIs(t, err, novelty.ErrRangeTooLarge)

	got, err := novelty.Sleep([]int{1, 100}, core.WithMaxAux(101))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 100}, got)
}

// TestSleepTimed_Permutation checks only the multiset: wake-up order is up
// to the scheduler.
func TestSleepTimed_Permutation(t *testing.T) {
	in := []int{3, 1, 4, 1, 5, 0, 2}
	got, err := novelty.SleepTimed(context.Background(), in, time.Millisecond)
	require.NoError(t, err)
	assert.ElementsMatch(t, in, got)

	empty, err := novelty.SleepTimed(context.Background(), []int{}, time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestSleepTimed_Cancel returns the context error.
func TestSleepTimed_Cancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := novelty.SleepTimed(ctx, []int{0, 1000}, time.Second)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestSleepTimed_Errors covers the argument checks.
func TestSleepTimed_Errors(t *testing.T) {
	ctx := context.Background()
	_, err := novelty.SleepTimed(ctx, []int{1}, 0)
	assert.ErrorIs(t, err, novelty.ErrInvalidUnit)

	_, err = novelty.SleepTimed(ctx, []int{1, -2}, time.Millisecond)
	assert.ErrorIs(t, err, novelty.ErrNegativeInput)

	_, err = novelty.SleepTimed(ctx, []uint64{1 << 62}, time.Hour)
	assert.ErrorIs(t, err, novelty.ErrRangeTooLarge)
}
