// SPDX-License-Identifier: MIT

package hybrid

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
	"github.com/katalvlaran/lvsort/divide"
	"github.com/katalvlaran/lvsort/exchange"
)

// MinMerge is the run length sorted by insertion before merging.
const MinMerge = 32

// Tim returns a sorted copy of s.
func Tim[T constraints.Ordered](s []T, opts ...core.Option) []T {
	return TimFunc(s, core.Ascending[T], opts...)
}

// TimFunc returns a copy of s sorted by less. Stable.
func TimFunc[T any](s []T, less core.Less[T], opts ...core.Option) []T {
	out := core.Clone(s)
	n := len(out)
	if n < 2 {
		return out
	}
	sr := core.NewSorter(out, less, core.Resolve(opts...))
	for lo := 0; lo < n; lo += MinMerge {
		exchange.InsertionRange(sr, lo, min(lo+MinMerge, n))
	}
	divide.MergeRuns(sr, make([]T, n), MinMerge)

	return out
}
