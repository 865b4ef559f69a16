// SPDX-License-Identifier: MIT

package treesort

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
)

// Tree returns a sorted copy of s.
func Tree[T constraints.Ordered](s []T, opts ...core.Option) []T {
	return TreeFunc(s, core.Ascending[T], opts...)
}

// TreeFunc returns a copy of s sorted by less. Stable.
func TreeFunc[T any](s []T, less core.Less[T], opts ...core.Option) []T {
	t := NewBST(less, opts...)
	for _, v := range s {
		t.Insert(v)
	}

	out := make([]T, 0, len(s))
	t.Walk(func(v T) bool {
		out = append(out, v)
		return true
	})
	t.sr.AddWrites(len(out))

	return out
}
