// SPDX-License-Identifier: MIT

package divide

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
)

// Merge returns a sorted copy of s.
func Merge[T constraints.Ordered](s []T, opts ...core.Option) []T {
	return MergeFunc(s, core.Ascending[T], opts...)
}

// MergeFunc returns a copy of s sorted by less. Stable: on ties the element
// of the left run is emitted first.
func MergeFunc[T any](s []T, less core.Less[T], opts ...core.Option) []T {
	out := core.Clone(s)
	sr := core.NewSorter(out, less, core.Resolve(opts...))
	buf := make([]T, len(out)/2+1)
	mergeSort(sr, buf, 0, len(out), 1)

	return out
}

func mergeSort[T any](sr *core.Sorter[T], buf []T, lo, hi, depth int) {
	if hi-lo < 2 {
		return
	}
	sr.Enter(depth)
	mid := lo + (hi-lo)/2
	mergeSort(sr, buf, lo, mid, depth+1)
	mergeSort(sr, buf, mid, hi, depth+1)
	MergeRange(sr, buf, lo, mid, hi)
}

// MergeRange merges the sorted runs sr.Data[lo:mid] and sr.Data[mid:hi]
// into sr.Data[lo:hi]. buf is scratch space of at least mid-lo elements;
// only the left run is copied out.
//
// If the runs are already in order across the seam the call costs one
// comparison and no writes.
func MergeRange[T any](sr *core.Sorter[T], buf []T, lo, mid, hi int) {
	if lo >= mid || mid >= hi {
		return
	}
	if !sr.Less(mid, mid-1) {
		return
	}

	n := copy(buf, sr.Data[lo:mid])
	sr.AddWrites(n)
	i, j, k := 0, mid, lo
	for i < n && j < hi {
		// Right wins only when strictly smaller; ties keep the left head.
		if sr.LessValue(sr.Data[j], buf[i]) {
			sr.Set(k, sr.Data[j])
			j++
		} else {
			sr.Set(k, buf[i])
			i++
		}
		k++
	}
	for ; i < n; i, k = i+1, k+1 {
		sr.Set(k, buf[i])
	}
}

// MergeRuns merges adjacent sorted runs of length width (the last run may be
// shorter), doubling the width until sr.Data is a single run. Every width is
// one pass. buf must hold at least len(sr.Data) elements: with uneven
// lengths the left run of the last merge can exceed half the slice.
func MergeRuns[T any](sr *core.Sorter[T], buf []T, width int) {
	n := sr.Len()
	for ; width < n; width *= 2 {
		for lo := 0; lo+width < n; lo += 2 * width {
			MergeRange(sr, buf, lo, lo+width, min(lo+2*width, n))
		}
		sr.Pass()
	}
}
