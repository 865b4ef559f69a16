// SPDX-License-Identifier: MIT

package exchange

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
)

// Bubble returns a sorted copy of s; s is not modified.
func Bubble[T constraints.Ordered](s []T, opts ...core.Option) []T {
	out := core.Clone(s)
	BubbleInPlace(out, opts...)

	return out
}

// BubbleInPlace sorts s in ascending order.
// Stops after the first pass without a swap, so a sorted input costs one pass
// of n-1 comparisons.
func BubbleInPlace[T constraints.Ordered](s []T, opts ...core.Option) {
	BubbleFunc(s, core.Ascending[T], opts...)
}

// BubbleFunc sorts s in place by less. Stable.
func BubbleFunc[T any](s []T, less core.Less[T], opts ...core.Option) {
	bubble(core.NewSorter(s, less, core.Resolve(opts...)))
}

func bubble[T any](sr *core.Sorter[T]) {
	// After pass k the k largest elements are final, so each pass stops one
	// position earlier.
	for end := sr.Len() - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if sr.Less(i+1, i) {
				sr.Swap(i, i+1)
				swapped = true
			}
		}
		sr.Pass()
		if !swapped {
			return
		}
	}
}

// Cocktail sorts s in place with alternating forward and backward bubble
// passes. One forward+backward round counts as one pass.
func Cocktail[T constraints.Ordered](s []T, opts ...core.Option) {
	CocktailFunc(s, core.Ascending[T], opts...)
}

// CocktailFunc sorts s in place by less. Stable.
func CocktailFunc[T any](s []T, less core.Less[T], opts ...core.Option) {
	sr := core.NewSorter(s, less, core.Resolve(opts...))
	lo, hi := 0, sr.Len()-1
	for lo < hi {
		swapped := false
		for i := lo; i < hi; i++ {
			if sr.Less(i+1, i) {
				sr.Swap(i, i+1)
				swapped = true
			}
		}
		hi--
		if !swapped {
			sr.Pass()

			return
		}

		swapped = false
		for i := hi; i > lo; i-- {
			if sr.Less(i, i-1) {
				sr.Swap(i-1, i)
				swapped = true
			}
		}
		lo++
		sr.Pass()
		if !swapped {
			return
		}
	}
}

// Comb sorts s in place. The gap starts at len(s) and shrinks to
// floor(gap/1.3) each pass (never below 1); sorting ends after a gap-1 pass
// without swaps.
func Comb[T constraints.Ordered](s []T, opts ...core.Option) {
	CombFunc(s, core.Ascending[T], opts...)
}

// CombFunc sorts s in place by less. Not stable.
func CombFunc[T any](s []T, less core.Less[T], opts ...core.Option) {
	sr := core.NewSorter(s, less, core.Resolve(opts...))
	n := sr.Len()
	if n < 2 {
		return
	}
	gap, swapped := n, true
	for gap > 1 || swapped {
		// floor(gap / 1.3) in integer arithmetic.
		gap = gap * 10 / 13
		if gap < 1 {
			gap = 1
		}
		swapped = false
		for i := 0; i+gap < n; i++ {
			if sr.Less(i+gap, i) {
				sr.Swap(i, i+gap)
				swapped = true
			}
		}
		sr.Pass()
	}
}

// Gnome sorts s in place with a single cursor: advance while the pair behind
// the cursor is ordered, otherwise swap it and step back.
func Gnome[T constraints.Ordered](s []T, opts ...core.Option) {
	GnomeFunc(s, core.Ascending[T], opts...)
}

// GnomeFunc sorts s in place by less. Stable.
func GnomeFunc[T any](s []T, less core.Less[T], opts ...core.Option) {
	sr := core.NewSorter(s, less, core.Resolve(opts...))
	n := sr.Len()
	for i := 1; i < n; {
		if i == 0 || !sr.Less(i, i-1) {
			i++
			continue
		}
		sr.Swap(i-1, i)
		i--
	}
}

// OddEven sorts s in place by brick sort: compare-exchange the odd pairs
// (1,2), (3,4), … then the even pairs (0,1), (2,3), … and repeat until a
// round makes no swap.
func OddEven[T constraints.Ordered](s []T, opts ...core.Option) {
	OddEvenFunc(s, core.Ascending[T], opts...)
}

// OddEvenFunc sorts s in place by less. Stable.
func OddEvenFunc[T any](s []T, less core.Less[T], opts ...core.Option) {
	sr := core.NewSorter(s, less, core.Resolve(opts...))
	n := sr.Len()
	if n < 2 {
		return
	}
	for sorted := false; !sorted; {
		sorted = true
		for start := 1; start >= 0; start-- {
			for i := start; i+1 < n; i += 2 {
				if sr.Less(i+1, i) {
					sr.Swap(i, i+1)
					sorted = false
				}
			}
		}
		sr.Pass()
	}
}
