// SPDX-License-Identifier: MIT

package exchange

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
)

// Selection sorts s in place by repeatedly swapping the minimum of the
// unsorted suffix into place.
//
// There is no early exit: every call performs exactly n(n-1)/2 comparisons,
// whatever the input order. At most n-1 swaps.
func Selection[T constraints.Ordered](s []T, opts ...core.Option) {
	SelectionFunc(s, core.Ascending[T], opts...)
}

// SelectionFunc sorts s in place by less. Not stable.
func SelectionFunc[T any](s []T, less core.Less[T], opts ...core.Option) {
	sr := core.NewSorter(s, less, core.Resolve(opts...))
	n := sr.Len()
	for i := 0; i < n-1; i++ {
		m := i
		for j := i + 1; j < n; j++ {
			if sr.Less(j, m) {
				m = j
			}
		}
		if m != i {
			sr.Swap(i, m)
		}
	}
}

// Cycle sorts s in place writing every element at most once into its final
// position, and returns the number of such writes.
// Already-placed elements cost no write, so a sorted input returns 0.
//
// Complexity: O(n²) comparisons, at most n writes.
func Cycle[T constraints.Ordered](s []T, opts ...core.Option) int {
	return CycleFunc(s, core.Ascending[T], opts...)
}

// CycleFunc sorts s in place by less and returns the write count. Not stable.
func CycleFunc[T any](s []T, less core.Less[T], opts ...core.Option) int {
	sr := core.NewSorter(s, less, core.Resolve(opts...))
	n := sr.Len()
	writes := 0
	for start := 0; start < n-1; start++ {
		item := sr.Data[start]
		pos := cyclePosition(sr, start, item)
		if pos == start {
			continue
		}
		for pos != start {
			pos = skipEqual(sr, pos, item)
			item, sr.Data[pos] = sr.Data[pos], item
			sr.AddWrites(1)
			writes++
			pos = cyclePosition(sr, start, item)
		}
		sr.Set(start, item)
		writes++
	}

	return writes
}

// cyclePosition returns start plus the number of elements after start that
// sort before item.
func cyclePosition[T any](sr *core.Sorter[T], start int, item T) int {
	pos := start
	for i := start + 1; i < sr.Len(); i++ {
		if sr.LessValue(sr.Data[i], item) {
			pos++
		}
	}

	return pos
}

// skipEqual moves pos past elements equivalent to item, so duplicates land
// after the copies already placed.
func skipEqual[T any](sr *core.Sorter[T], pos int, item T) int {
	for !sr.LessValue(item, sr.Data[pos]) && !sr.LessValue(sr.Data[pos], item) {
		pos++
	}

	return pos
}
