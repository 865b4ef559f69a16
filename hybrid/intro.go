// SPDX-License-Identifier: MIT

package hybrid

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
	"github.com/katalvlaran/lvsort/divide"
	"github.com/katalvlaran/lvsort/exchange"
	"github.com/katalvlaran/lvsort/heapsort"
)

// IntroThreshold is the window size below which introsort switches to
// insertion sort.
const IntroThreshold = 16

// Intro sorts s in place.
func Intro[T constraints.Ordered](s []T, opts ...core.Option) {
	IntroFunc(s, core.Ascending[T], opts...)
}

// IntroFunc sorts s in place by less. Not stable.
func IntroFunc[T any](s []T, less core.Less[T], opts ...core.Option) {
	sr := core.NewSorter(s, less, core.Resolve(opts...))
	n := sr.Len()
	if n < 2 {
		return
	}
	introSort(sr, 0, n-1, DepthLimit(n), 1)
}

// DepthLimit returns the recursion budget 2·⌊log2 n⌋ for n > 0.
func DepthLimit(n int) int {
	return 2 * (bits.Len(uint(n)) - 1)
}

// introSort sorts the inclusive window [low, high]. budget is decremented
// on every recursive call.
func introSort[T any](sr *core.Sorter[T], low, high, budget, level int) {
	size := high - low + 1
	if size < 2 {
		return
	}
	sr.Enter(level)

	switch {
	case size < IntroThreshold:
		exchange.InsertionRange(sr, low, high+1)
	case budget == 0:
		sr.Fallback()
		heapsort.SortRange(sr, low, high)
	default:
		p := divide.LomutoPartition(sr, low, high)
		introSort(sr, low, p-1, budget-1, level+1)
		introSort(sr, p+1, high, budget-1, level+1)
	}
}
