// SPDX-License-Identifier: MIT

package divide

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
)

// Quick returns a sorted copy of s using the functional three-way quicksort.
func Quick[T constraints.Ordered](s []T, opts ...core.Option) []T {
	return QuickFunc(s, core.Ascending[T], opts...)
}

// QuickFunc returns a copy of s sorted by less.
//
// The pivot is the element at index len/2. Each level filters the input into
// fresh lists of elements less than, equivalent to and greater than the pivot,
// preserving input order inside each list, and concatenates the sorted
// outer lists around the equal list. The result is therefore stable.
// The input slice is never written.
func QuickFunc[T any](s []T, less core.Less[T], opts ...core.Option) []T {
	sr := core.NewSorter[T](nil, less, core.Resolve(opts...))

	return quick3(sr, s, 1)
}

func quick3[T any](sr *core.Sorter[T], s []T, depth int) []T {
	if len(s) < 2 {
		return core.Clone(s)
	}
	sr.Enter(depth)

	pivot := s[len(s)/2]
	var lt, eq, gt []T
	for _, v := range s {
		switch {
		case sr.LessValue(v, pivot):
			lt = append(lt, v)
		case sr.LessValue(pivot, v):
			gt = append(gt, v)
		default:
			eq = append(eq, v)
		}
	}
	sr.AddWrites(len(s))

	out := make([]T, 0, len(s))
	out = append(out, quick3(sr, lt, depth+1)...)
	out = append(out, eq...)
	out = append(out, quick3(sr, gt, depth+1)...)
	sr.AddWrites(len(s))

	return out
}

// QuickInPlace sorts s in place with recursive Lomuto quicksort.
//
// The pivot is the last element of every window, so sorted and reverse-sorted
// inputs hit the O(n²) worst case with recursion depth n.
func QuickInPlace[T constraints.Ordered](s []T, opts ...core.Option) {
	QuickInPlaceFunc(s, core.Ascending[T], opts...)
}

// QuickInPlaceFunc sorts s in place by less. Not stable.
func QuickInPlaceFunc[T any](s []T, less core.Less[T], opts ...core.Option) {
	sr := core.NewSorter(s, less, core.Resolve(opts...))
	quickLomuto(sr, 0, sr.Len()-1, 1)
}

func quickLomuto[T any](sr *core.Sorter[T], lo, hi, depth int) {
	if lo >= hi {
		return
	}
	sr.Enter(depth)
	p := LomutoPartition(sr, lo, hi)
	quickLomuto(sr, lo, p-1, depth+1)
	quickLomuto(sr, p+1, hi, depth+1)
}

// LomutoPartition partitions the inclusive window sr.Data[lo..hi] around the
// pivot sr.Data[hi] and returns the pivot's final index p:
// every element of [lo, p) is not greater than the pivot and every element of
// (p, hi] is greater. Requires lo <= hi.
func LomutoPartition[T any](sr *core.Sorter[T], lo, hi int) int {
	i := lo
	for j := lo; j < hi; j++ {
		if !sr.Less(hi, j) {
			if i != j {
				sr.Swap(i, j)
			}
			i++
		}
	}
	if i != hi {
		sr.Swap(i, hi)
	}

	return i
}

// QuickIterative sorts s in place with Lomuto partitioning and an explicit
// stack of pending windows instead of recursion.
//
// The larger side is pushed first so the smaller one is popped next; the
// stack never holds more than O(log n) windows. Stats.MaxDepth reports the
// peak stack size.
func QuickIterative[T constraints.Ordered](s []T, opts ...core.Option) {
	QuickIterativeFunc(s, core.Ascending[T], opts...)
}

// QuickIterativeFunc sorts s in place by less. Not stable.
func QuickIterativeFunc[T any](s []T, less core.Less[T], opts ...core.Option) {
	sr := core.NewSorter(s, less, core.Resolve(opts...))
	if sr.Len() < 2 {
		return
	}

	type window struct{ lo, hi int }
	stack := []window{{0, sr.Len() - 1}}
	for len(stack) > 0 {
		sr.Enter(len(stack))
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		p := LomutoPartition(sr, w.lo, w.hi)
		left, right := window{w.lo, p - 1}, window{p + 1, w.hi}
		if left.hi-left.lo > right.hi-right.lo {
			left, right = right, left
		}
		// right is now the larger side.
		if right.lo < right.hi {
			stack = append(stack, right)
		}
		if left.lo < left.hi {
			stack = append(stack, left)
		}
	}
}
