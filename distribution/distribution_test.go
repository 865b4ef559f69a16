// SPDX-License-Identifier: MIT

package distribution_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsort/core"
	"github.com/katalvlaran/lvsort/dataset"
	"github.com/katalvlaran/lvsort/distribution"
	"github.com/katalvlaran/lvsort/internal/sorttest"
)

var intSorts = []struct {
	name string
	sort func([]int, ...core.Option) ([]int, error)
}{
	{"Counting", distribution.Counting[int]},
	{"Radix", distribution.Radix[int]},
	{"Bucket", distribution.Bucket[int]},
	{"Pigeonhole", distribution.Pigeonhole[int]},
	{"Flash", distribution.Flash[int]},
	{"Bead", distribution.Bead[int]},
}

// TestIntSorts_Corpus runs every distribution sort over the non-negative
// corpus and checks that the input is never modified.
func TestIntSorts_Corpus(t *testing.T) {
	for _, alg := range intSorts {
		for _, tc := range sorttest.Cases() {
			t.Run(alg.name+"/"+tc.Name, func(t *testing.T) {
				orig := slices.Clone(tc.In)
				got, err := alg.sort(tc.In)
				require.NoError(t, err)
				sorttest.CheckSorted(t, tc.In, got)
				assert.Equal(t, orig, tc.In)
			})
		}
	}
}

// TestVectors checks the reference vectors.
func TestVectors(t *testing.T) {
	got, err := distribution.Counting([]int{4, 2, 2, 8, 3, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 3, 3, 4, 8}, got)

	got, err = distribution.Radix([]int{170, 45, 75, 90, 802, 24, 2, 66})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 24, 45, 66, 75, 90, 170, 802}, got)
}

// TestNegativeInput verifies fail-fast rejection of negatives.
func TestNegativeInput(t *testing.T) {
	for _, alg := range intSorts {
		if alg.name == "Bucket" {
			continue
		}
		t.Run(alg.name, func(t *testing.T) {
			in := []int{3, -1, 2}
			_, err := alg.sort(in)
			assert.ErrorIs(t, err, distribution.ErrNegativeInput)
			assert.Equal(t, []int{3, -1, 2}, in)
		})
	}
}

// TestDegenerate covers inputs that are returned without validation.
func TestDegenerate(t *testing.T) {
	for _, alg := range intSorts {
		got, err := alg.sort(nil)
		require.NoError(t, err, alg.name)
		assert.Empty(t, got)

		got, err = alg.sort([]int{-7})
		require.NoError(t, err, alg.name)
		assert.Equal(t, []int{-7}, got, "a singleton is already sorted")
	}
}

// TestRangeTooLarge checks the auxiliary-cell budget.
func TestRangeTooLarge(t *testing.T) {
	in := []int{1, 5000, 3}
	for _, name := range []string{"Counting", "Pigeonhole", "Bead"} {
		for _, alg := range intSorts {
			if alg.name != name {
				continue
			}
			_, err := alg.sort(in, core.WithMaxAux(1000))
			assert.ErrorIs(t, err, distribution.ErrRangeTooLarge, name)
		}
	}

	got, err := distribution.Counting(in, core.WithMaxAux(5001))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5000}, got)

	// Pigeonhole only pays for max-min+1 holes.
	got, err = distribution.Pigeonhole([]int{1_000_000, 1_000_002, 1_000_001}, core.WithMaxAux(3))
	require.NoError(t, err)
	assert.Equal(t, []int{1_000_000, 1_000_001, 1_000_002}, got)

	_, err = distribution.Counting([]uint64{math.MaxUint64, 0})
	assert.ErrorIs(t, err, distribution.ErrRangeTooLarge)
}

// TestRadix_PassesPerDigit counts one pass per decimal digit of max.
func TestRadix_PassesPerDigit(t *testing.T) {
	cases := []struct {
		in     []int
		passes int
	}{
		{[]int{0, 0, 0}, 0},
		{[]int{9, 1}, 1},
		{[]int{10, 1}, 2},
		{[]int{170, 45, 75, 90, 802, 24, 2, 66}, 3},
	}
	for _, tc := range cases {
		var st core.Stats
		_, err := distribution.Radix(tc.in, core.WithStats(&st))
		require.NoError(t, err)
		assert.Equal(t, tc.passes, st.Passes, "%v", tc.in)
	}

	got, err := distribution.Radix([]uint8{255, 0, 128, 7})
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 7, 128, 255}, got, "no overflow near the type limit")

	big, err := distribution.Radix([]uint64{math.MaxUint64, 1, math.MaxUint64 - 1})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, math.MaxUint64 - 1, math.MaxUint64}, big)
}

// TestBucket_Floats covers signed floats, bucket counts and all-equal input.
func TestBucket_Floats(t *testing.T) {
	in := []float64{0.42, -3.5, 0.32, 0.23, 0.52, 0.25, 0.47, 0.51, 9.75}
	for _, k := range []int{1, 2, 10, 100} {
		got, err := distribution.Bucket(in, core.WithBuckets(k))
		require.NoError(t, err)
		sorttest.CheckSorted(t, in, got)
	}

	same, err := distribution.Bucket([]float64{2.5, 2.5, 2.5})
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 2.5, 2.5}, same)

	signed, err := distribution.Bucket([]int{-3, 7, 0, -11, 5, -3, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{-11, -3, -3, 0, 2, 5, 7}, signed)

	huge, err := distribution.Bucket([]float64{-math.MaxFloat64, math.MaxFloat64, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{-math.MaxFloat64, 0, math.MaxFloat64}, huge)
}

// TestNonFinite rejects NaN and infinities.
func TestNonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := distribution.Bucket([]float64{1, bad})
		assert.ErrorIs(t, err, distribution.ErrNonFinite)
		_, err = distribution.Flash([]float64{1, bad})
		assert.ErrorIs(t, err, distribution.ErrNonFinite)
	}
}

// TestFlash_Shapes exercises duplicates, two-class and float inputs.
func TestFlash_Shapes(t *testing.T) {
	cases := map[string][]float64{
		"two values":      {1, 0, 1, 0, 1, 0},
		"heavy duplicate": {5, 5, 5, 5, 0, 5, 5, 9},
		"fractions":       {0.9, 0.1, 0.5, 0.3, 0.7, 0.2},
		"max first":       {100, 1, 2, 3, 4, 5, 6, 7},
		"one outlier":     {1, 1, 1, 1, 1, 1, 1, 1e9},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := distribution.Flash(in)
			require.NoError(t, err)
			sorttest.CheckSorted(t, in, got)
		})
	}

	_, err := distribution.Flash([]float64{0.5, -0.5})
	assert.ErrorIs(t, err, distribution.ErrNegativeInput)
}

// TestFlash_Random runs flash sort over many random sizes.
func TestFlash_Random(t *testing.T) {
	for n := 2; n < 300; n += 7 {
		in := dataset.MustBuild(dataset.Random, n, dataset.WithSeed(int64(n)), dataset.WithMaxValue(n/3+1))
		got, err := distribution.Flash(in)
		require.NoError(t, err)
		sorttest.CheckSorted(t, in, got)
	}
}

// TestCountingFunc_Stable sorts records by key and keeps tag order.
func TestCountingFunc_Stable(t *testing.T) {
	in := sorttest.StabilityInput(100)
	got, err := distribution.CountingFunc(in, sorttest.KeyOf)
	require.NoError(t, err)
	sorttest.CheckStable(t, got)
	assert.Len(t, got, len(in))

	_, err = distribution.CountingFunc([]sorttest.Record{{Key: 1}, {Key: -2}}, sorttest.KeyOf)
	assert.ErrorIs(t, err, distribution.ErrNegativeInput)
}

// TestBead_Grid checks the grid budget counts n·max cells.
func TestBead_Grid(t *testing.T) {
	in := []int{3, 0, 2, 1}
	_, err := distribution.Bead(in, core.WithMaxAux(11))
	assert.ErrorIs(t, err, distribution.ErrRangeTooLarge)

	got, err := distribution.Bead(in, core.WithMaxAux(12))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}
