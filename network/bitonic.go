// SPDX-License-Identifier: MIT

package network

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
)

// Bitonic sorts s in place in ascending order.
func Bitonic[T constraints.Ordered](s []T, opts ...core.Option) error {
	return BitonicFunc(s, core.Ascending[T], opts...)
}

// BitonicDescending sorts s in place in descending order.
func BitonicDescending[T constraints.Ordered](s []T, opts ...core.Option) error {
	if err := checkLength(len(s)); err != nil {
		return err
	}
	sr := core.NewSorter(s, core.Ascending[T], core.Resolve(opts...))
	bitonicSort(sr, 0, len(s), false, 1)

	return nil
}

// BitonicFunc sorts s in place by less.
//
// The first half is sorted ascending and the second half descending, which
// makes the whole window bitonic; the bitonic merge then compares i with i+n/2
// and recurses on both halves.
func BitonicFunc[T any](s []T, less core.Less[T], opts ...core.Option) error {
	if err := checkLength(len(s)); err != nil {
		return err
	}
	sr := core.NewSorter(s, less, core.Resolve(opts...))
	bitonicSort(sr, 0, len(s), true, 1)

	return nil
}

func bitonicSort[T any](sr *core.Sorter[T], lo, n int, asc bool, depth int) {
	if n < 2 {
		return
	}
	sr.Enter(depth)
	m := n / 2
	bitonicSort(sr, lo, m, true, depth+1)
	bitonicSort(sr, lo+m, m, false, depth+1)
	bitonicMerge(sr, lo, n, asc)
}

// bitonicMerge turns the bitonic window [lo, lo+n) into a monotone one.
func bitonicMerge[T any](sr *core.Sorter[T], lo, n int, asc bool) {
	if n < 2 {
		return
	}
	m := n / 2
	for i := lo; i < lo+m; i++ {
		compareExchange(sr, i, i+m, asc)
	}
	bitonicMerge(sr, lo, m, asc)
	bitonicMerge(sr, lo+m, m, asc)
}

// compareExchange orders the pair (i, j), i < j, in the requested direction.
func compareExchange[T any](sr *core.Sorter[T], i, j int, asc bool) {
	if asc {
		if sr.Less(j, i) {
			sr.Swap(i, j)
		}

		return
	}
	if sr.Less(i, j) {
		sr.Swap(i, j)
	}
}
