// SPDX-License-Identifier: MIT

package network

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
)

// OddEvenMerge sorts s in place with Batcher's odd–even merge network.
func OddEvenMerge[T constraints.Ordered](s []T, opts ...core.Option) error {
	return OddEvenMergeFunc(s, core.Ascending[T], opts...)
}

// OddEvenMergeFunc sorts s in place by less.
func OddEvenMergeFunc[T any](s []T, less core.Less[T], opts ...core.Option) error {
	if err := checkLength(len(s)); err != nil {
		return err
	}
	sr := core.NewSorter(s, less, core.Resolve(opts...))
	oddEvenMergeSort(0, len(s)-1, func(i, j int) {
		compareExchange(sr, i, j, true)
	})

	return nil
}

// Comparators returns the compare-exchange pairs (i, j), i < j, of the
// odd–even merge network for n inputs, in execution order.
// Applying them to any slice of length n sorts it.
func Comparators(n int) ([][2]int, error) {
	if err := checkLength(n); err != nil {
		return nil, err
	}
	pairs := make([][2]int, 0)
	oddEvenMergeSort(0, n-1, func(i, j int) {
		pairs = append(pairs, [2]int{i, j})
	})

	return pairs, nil
}

// oddEvenMergeSort sorts the inclusive window [lo, hi]: both halves first,
// then the odd–even merge of the halves.
func oddEvenMergeSort(lo, hi int, visit func(i, j int)) {
	if hi <= lo {
		return
	}
	mid := lo + (hi-lo)/2
	oddEvenMergeSort(lo, mid, visit)
	oddEvenMergeSort(mid+1, hi, visit)
	oddEvenMerge(lo, hi, 1, visit)
}

// oddEvenMerge merges the two sorted halves of [lo, hi] looking at every
// r-th element: the even and odd subsequences are merged recursively with
// stride 2r, then neighbours at distance r are fixed up.
func oddEvenMerge(lo, hi, r int, visit func(i, j int)) {
	step := r * 2
	if step >= hi-lo {
		visit(lo, lo+r)

		return
	}
	oddEvenMerge(lo, hi, step, visit)
	oddEvenMerge(lo+r, hi, step, visit)
	for i := lo + r; i < hi-r; i += step {
		visit(i, i+r)
	}
}
