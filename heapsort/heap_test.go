// SPDX-License-Identifier: MIT

package heapsort_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsort/core"
	"github.com/katalvlaran/lvsort/dataset"
	"github.com/katalvlaran/lvsort/heapsort"
	"github.com/katalvlaran/lvsort/internal/sorttest"
)

// TestHeap_SortsCorpus runs Heap over the shared corpus.
func TestHeap_SortsCorpus(t *testing.T) {
	for _, tc := range append(sorttest.Cases(), sorttest.Signed()...) {
		t.Run(tc.Name, func(t *testing.T) {
			got := slices.Clone(tc.In)
			heapsort.Heap(got)
			sorttest.CheckSorted(t, tc.In, got)
		})
	}
}

// TestHeapFunc_Descending checks the comparator variant.
func TestHeapFunc_Descending(t *testing.T) {
	s := []float64{0.5, -1, 3.25, 2, 2}
	heapsort.HeapFunc(s, core.Descending[float64])
	assert.Equal(t, []float64{3.25, 2, 2, 0.5, -1}, s)
}

// TestSortRange_Window verifies that only the window is sorted and that no
// position outside it is touched, including through the swap hook.
func TestSortRange_Window(t *testing.T) {
	data := dataset.MustBuild(dataset.Random, 40, dataset.WithSeed(9))
	orig := slices.Clone(data)
	const low, high = 7, 29

	touched := false
	sr := core.NewSorter(data, core.Ascending[int], core.Resolve(core.WithOnSwap(func(i, j int) {
		if i < low || i > high || j < low || j > high {
			touched = true
		}
	})))
	heapsort.SortRange(sr, low, high)

	assert.False(t, touched)
	assert.Equal(t, orig[:low], data[:low])
	assert.Equal(t, orig[high+1:], data[high+1:])
	sorttest.CheckSorted(t, orig[low:high+1], data[low:high+1])
}

// TestSortRange_Degenerate covers empty and single-element windows.
func TestSortRange_Degenerate(t *testing.T) {
	data := []int{3, 2, 1}
	sr := core.NewSorter(data, core.Ascending[int], core.Resolve())
	heapsort.SortRange(sr, 1, 1)
	heapsort.SortRange(sr, 2, 1)
	require.Equal(t, []int{3, 2, 1}, data)

	heapsort.SortRange(sr, 1, 2)
	assert.Equal(t, []int{3, 1, 2}, data)
}

// TestHeap_NLogNComparisons bounds the comparison count on reversed input.
func TestHeap_NLogNComparisons(t *testing.T) {
	const n = 1024
	s := dataset.MustBuild(dataset.Reversed, n, dataset.WithMaxValue(n))
	var st core.Stats
	heapsort.Heap(s, core.WithStats(&st))
	require.True(t, core.IsSorted(s))
	assert.LessOrEqual(t, st.Comparisons, 2*n*10+2*n, "≤ 2n·log2(n) + heapify")
}
