// SPDX-License-Identifier: MIT

package exchange

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
)

// Insertion sorts s in place. Sorted input costs n-1 comparisons and no
// writes.
func Insertion[T constraints.Ordered](s []T, opts ...core.Option) {
	InsertionFunc(s, core.Ascending[T], opts...)
}

// InsertionFunc sorts s in place by less. Stable.
func InsertionFunc[T any](s []T, less core.Less[T], opts ...core.Option) {
	sr := core.NewSorter(s, less, core.Resolve(opts...))
	InsertionRange(sr, 0, sr.Len())
}

// InsertionRange insertion-sorts the half-open window sr.Data[lo:hi].
// Elements outside the window are neither read nor written.
//
// Each element is held aside while larger predecessors shift one slot right
// (one write per shift), then stored once. Equal elements never pass each
// other, so the kernel is stable.
func InsertionRange[T any](sr *core.Sorter[T], lo, hi int) {
	for i := lo + 1; i < hi; i++ {
		v := sr.Data[i]
		j := i
		for j > lo && sr.LessValue(v, sr.Data[j-1]) {
			sr.Set(j, sr.Data[j-1])
			j--
		}
		if j != i {
			sr.Set(j, v)
		}
	}
}

// Shell sorts s in place with gapped insertion passes. Gaps are n/2, n/4, …
// down to 1; the final gap-1 pass is a plain insertion sort over an almost
// sorted slice. Each gap is one pass.
func Shell[T constraints.Ordered](s []T, opts ...core.Option) {
	ShellFunc(s, core.Ascending[T], opts...)
}

// ShellFunc sorts s in place by less. Not stable.
func ShellFunc[T any](s []T, less core.Less[T], opts ...core.Option) {
	sr := core.NewSorter(s, less, core.Resolve(opts...))
	n := sr.Len()
	for gap := n / 2; gap > 0; gap /= 2 {
		for i := gap; i < n; i++ {
			v := sr.Data[i]
			j := i
			for j >= gap && sr.LessValue(v, sr.Data[j-gap]) {
				sr.Set(j, sr.Data[j-gap])
				j -= gap
			}
			if j != i {
				sr.Set(j, v)
			}
		}
		sr.Pass()
	}
}
