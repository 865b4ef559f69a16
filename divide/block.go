// SPDX-License-Identifier: MIT

package divide

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
	"github.com/katalvlaran/lvsort/exchange"
)

// Block returns a sorted copy of s.
func Block[T constraints.Ordered](s []T, opts ...core.Option) []T {
	return BlockFunc(s, core.Ascending[T], opts...)
}

// BlockFunc returns a copy of s sorted by less.
//
// The copy is cut into blocks of BlockSize(n) elements, each block is
// insertion-sorted, then adjacent blocks are merged bottom-up with doubling
// width. Both phases are stable, so the result is stable.
func BlockFunc[T any](s []T, less core.Less[T], opts ...core.Option) []T {
	out := core.Clone(s)
	n := len(out)
	if n < 2 {
		return out
	}
	sr := core.NewSorter(out, less, core.Resolve(opts...))

	b := BlockSize(n)
	for lo := 0; lo < n; lo += b {
		exchange.InsertionRange(sr, lo, min(lo+b, n))
	}
	MergeRuns(sr, make([]T, n), b)

	return out
}

// BlockSize returns floor(√n), at least 1.
func BlockSize(n int) int {
	b := int(math.Sqrt(float64(n)))
	for b*b > n {
		b--
	}
	for (b+1)*(b+1) <= n {
		b++
	}

	return max(b, 1)
}
