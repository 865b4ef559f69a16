// SPDX-License-Identifier: MIT

package core

import "golang.org/x/exp/constraints"

// Less reports whether a must sort before b.
// Implementations must describe a strict weak order: irreflexive, transitive,
// with transitive incomparability. Stable algorithms keep elements for which
// neither Less(a, b) nor Less(b, a) holds in their input order.
type Less[T any] func(a, b T) bool

// Number is the element domain of the distribution sorts that compute with
// values (bucket index, flash classification).
type Number interface {
	constraints.Integer | constraints.Float
}

// Ascending is the natural order of an ordered type.
func Ascending[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Descending reverses the natural order of an ordered type.
func Descending[T constraints.Ordered](a, b T) bool {
	return b < a
}

// Clone returns a copy of s with its own backing array.
// A nil input yields an empty, non-nil slice so pure variants always return
// storage the caller owns.
func Clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)

	return out
}

// MinMax returns the smallest and largest element of a non-empty slice.
// It panics on an empty slice (programmer error; callers check len first).
func MinMax[T constraints.Ordered](s []T) (lo, hi T) {
	lo, hi = s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}
