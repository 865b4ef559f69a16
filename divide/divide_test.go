// SPDX-License-Identifier: MIT

package divide_test

import (
	"math/bits"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsort/core"
	"github.com/katalvlaran/lvsort/dataset"
	"github.com/katalvlaran/lvsort/divide"
	"github.com/katalvlaran/lvsort/internal/sorttest"
)

// pure lists the entry points returning a new slice.
var pure = []struct {
	name string
	sort func([]int, ...core.Option) []int
}{
	{"Merge", divide.Merge[int]},
	{"Quick", divide.Quick[int]},
	{"Block", divide.Block[int]},
}

// inPlace lists the mutating entry points.
var inPlace = []struct {
	name string
	sort func([]int, ...core.Option)
}{
	{"QuickInPlace", divide.QuickInPlace[int]},
	{"QuickIterative", divide.QuickIterative[int]},
}

// TestPure_SortsCorpus checks sortedness, permutation and input immutability.
func TestPure_SortsCorpus(t *testing.T) {
	cases := append(sorttest.Cases(), sorttest.Signed()...)
	for _, alg := range pure {
		for _, tc := range cases {
			t.Run(alg.name+"/"+tc.Name, func(t *testing.T) {
				orig := slices.Clone(tc.In)
				got := alg.sort(tc.In)
				sorttest.CheckSorted(t, tc.In, got)
				assert.Equal(t, orig, tc.In, "input must not be modified")
				assert.Equal(t, got, alg.sort(got), "idempotent")
			})
		}
	}
}

// TestInPlace_SortsCorpus checks the Lomuto variants.
func TestInPlace_SortsCorpus(t *testing.T) {
	cases := append(sorttest.Cases(), sorttest.Signed()...)
	for _, alg := range inPlace {
		for _, tc := range cases {
			t.Run(alg.name+"/"+tc.Name, func(t *testing.T) {
				got := slices.Clone(tc.In)
				alg.sort(got)
				sorttest.CheckSorted(t, tc.In, got)
			})
		}
	}
}

// TestMerge_EdgeVectors covers the empty and singleton vectors.
func TestMerge_EdgeVectors(t *testing.T) {
	assert.Equal(t, []int{}, divide.Merge([]int{}))
	assert.Equal(t, []int{5}, divide.Merge([]int{5}))
	assert.NotNil(t, divide.Merge([]int(nil)))
}

// TestStableVariants verifies stability of Merge, Quick and Block.
func TestStableVariants(t *testing.T) {
	small := []sorttest.Record{{Key: 1, Tag: 0}, {Key: 1, Tag: 1}, {Key: 0, Tag: 2}}
	assert.Equal(t,
		[]sorttest.Record{{Key: 0, Tag: 2}, {Key: 1, Tag: 0}, {Key: 1, Tag: 1}},
		divide.MergeFunc(small, sorttest.ByKey))

	for name, sort := range map[string]func([]sorttest.Record, core.Less[sorttest.Record], ...core.Option) []sorttest.Record{
		"Merge": divide.MergeFunc[sorttest.Record],
		"Quick": divide.QuickFunc[sorttest.Record],
		"Block": divide.BlockFunc[sorttest.Record],
	} {
		t.Run(name, func(t *testing.T) {
			in := sorttest.StabilityInput(200)
			sorttest.CheckStable(t, sort(in, sorttest.ByKey))
		})
	}
}

// TestQuickInPlace_SortedDepth documents the Lomuto worst case: sorted input
// recurses once per element.
func TestQuickInPlace_SortedDepth(t *testing.T) {
	const n = 300
	s := dataset.MustBuild(dataset.Sorted, n, dataset.WithMaxValue(n))
	var st core.Stats
	divide.QuickInPlace(s, core.WithStats(&st))
	assert.True(t, core.IsSorted(s))
	assert.Equal(t, n-1, st.MaxDepth)
	assert.Equal(t, n*(n-1)/2, st.Comparisons)
}

// TestQuickIterative_BoundedStack checks that the explicit stack stays
// logarithmic on both adversarial and random inputs.
func TestQuickIterative_BoundedStack(t *testing.T) {
	const n = 4096
	for _, shape := range []dataset.Shape{dataset.Sorted, dataset.Reversed, dataset.Random, dataset.OrganPipe} {
		t.Run(string(shape), func(t *testing.T) {
			s := dataset.MustBuild(shape, n, dataset.WithSeed(5), dataset.WithMaxValue(1<<20))
			var st core.Stats
			divide.QuickIterative(s, core.WithStats(&st))
			require.True(t, core.IsSorted(s))
			assert.LessOrEqual(t, st.MaxDepth, bits.Len(n)+1)
		})
	}
}

// TestLomutoPartition checks the partition contract on a window.
func TestLomutoPartition(t *testing.T) {
	data := []int{100, 7, 2, 9, 1, 5, -100}
	sr := core.NewSorter(data, core.Ascending[int], core.Resolve())
	p := divide.LomutoPartition(sr, 1, 5)
	require.Equal(t, 5, data[p], "pivot lands at its final index")
	for i := 1; i < p; i++ {
		assert.LessOrEqual(t, data[i], 5)
	}
	for i := p + 1; i <= 5; i++ {
		assert.Greater(t, data[i], 5)
	}
	assert.Equal(t, 100, data[0])
	assert.Equal(t, -100, data[6])
}

// TestMergeRange_SeamShortcut ensures ordered runs cost one comparison.
func TestMergeRange_SeamShortcut(t *testing.T) {
	var st core.Stats
	data := []int{1, 2, 3, 4, 5, 6}
	sr := core.NewSorter(data, core.Ascending[int], core.Resolve(core.WithStats(&st)))
	divide.MergeRange(sr, make([]int, 3), 0, 3, 6)
	assert.Equal(t, 1, st.Comparisons)
	assert.Equal(t, 0, st.Writes)

	data = []int{4, 5, 6, 1, 2, 3}
	sr = core.NewSorter(data, core.Ascending[int], core.Resolve())
	divide.MergeRange(sr, make([]int, 3), 0, 3, 6)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, data)
}

// TestMergeRuns_UnevenTail merges runs whose last run is short.
func TestMergeRuns_UnevenTail(t *testing.T) {
	var st core.Stats
	data := []int{5, 8, 1, 9, 0, 3, 2, 7, 4, 6}
	sr := core.NewSorter(data, core.Ascending[int], core.Resolve(core.WithStats(&st)))
	divide.MergeRuns(sr, make([]int, len(data)), 1)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, data)
	assert.Equal(t, 4, st.Passes, "widths 1, 2, 4, 8")
}

// TestBlockSize checks floor(√n).
func TestBlockSize(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 3: 1, 4: 2, 15: 3, 16: 4, 17: 4, 1000000: 1000}
	for n, want := range cases {
		assert.Equal(t, want, divide.BlockSize(n), "n=%d", n)
	}
}
