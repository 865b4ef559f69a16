// SPDX-License-Identifier: MIT

package novelty

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
)

// Spaghetti returns a sorted copy of s.
func Spaghetti[T constraints.Ordered](s []T, opts ...core.Option) []T {
	return SpaghettiFunc(s, core.Ascending[T], opts...)
}

// SpaghettiFunc returns a copy of s sorted by less.
//
// Each round scans the remaining rods for the tallest, takes the last one
// among equals and writes it to the highest free output slot, so equal
// elements keep their input order.
func SpaghettiFunc[T any](s []T, less core.Less[T], opts ...core.Option) []T {
	rods := core.Clone(s)
	out := make([]T, len(s))
	sr := core.NewSorter(rods, less, core.Resolve(opts...))

	for pos := len(out) - 1; pos >= 0; pos-- {
		tallest := 0
		for i := 1; i < len(rods); i++ {
			if !sr.Less(i, tallest) {
				tallest = i
			}
		}
		out[pos] = rods[tallest]
		rods = append(rods[:tallest], rods[tallest+1:]...)
		sr.Data = rods
		sr.AddWrites(1)
		sr.Pass()
	}

	return out
}
