// SPDX-License-Identifier: MIT

package distribution

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
)

// Pigeonhole returns a sorted copy of s, whose values must be non-negative.
// One hole is allocated per value of [min(s), max(s)]; each hole counts its
// occurrences and the holes are emptied in order.
//
// Errors: ErrNegativeInput; ErrRangeTooLarge when max-min+1 holes exceed
// Options.MaxAux.
func Pigeonhole[T constraints.Integer](s []T, opts ...core.Option) ([]T, error) {
	if len(s) < 2 {
		return core.Clone(s), nil
	}
	o := core.Resolve(opts...)
	hi, err := nonNegativeMax(s)
	if err != nil {
		return nil, err
	}
	lo := hi
	for _, v := range s {
		lo = min(lo, uint64(v))
	}
	if err = checkAux(span(hi-lo), o); err != nil {
		return nil, err
	}

	holes := make([]int, hi-lo+1)
	for _, v := range s {
		holes[uint64(v)-lo]++
	}
	out := make([]T, 0, len(s))
	for i, c := range holes {
		for ; c > 0; c-- {
			out = append(out, T(lo+uint64(i)))
		}
	}
	sr := core.NewSorter(out, core.Ascending[T], o)
	sr.AddWrites(len(out))
	sr.Pass()

	return out, nil
}
