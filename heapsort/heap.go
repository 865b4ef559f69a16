// SPDX-License-Identifier: MIT

package heapsort

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
)

// Heap sorts s in place in ascending order.
func Heap[T constraints.Ordered](s []T, opts ...core.Option) {
	HeapFunc(s, core.Ascending[T], opts...)
}

// HeapFunc sorts s in place by less.
func HeapFunc[T any](s []T, less core.Less[T], opts ...core.Option) {
	sr := core.NewSorter(s, less, core.Resolve(opts...))
	SortRange(sr, 0, sr.Len()-1)
}

// SortRange sorts the inclusive window sr.Data[low..high].
// An empty or single-element window (high <= low) is a no-op.
func SortRange[T any](sr *core.Sorter[T], low, high int) {
	n := high - low + 1
	if n < 2 {
		return
	}

	for i := low + n/2 - 1; i >= low; i-- {
		siftDown(sr, low, i, high)
	}
	for end := high; end > low; end-- {
		sr.Swap(low, end)
		siftDown(sr, low, low, end-1)
	}
}

// siftDown restores the heap property below node i of the heap rooted at
// low and ending at high (inclusive).
func siftDown[T any](sr *core.Sorter[T], low, i, high int) {
	for {
		child := low + 2*(i-low) + 1
		if child > high {
			return
		}
		if right := child + 1; right <= high && sr.Less(child, right) {
			child = right
		}
		if !sr.Less(i, child) {
			return
		}
		sr.Swap(i, child)
		i = child
	}
}
