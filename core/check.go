// SPDX-License-Identifier: MIT

package core

import "golang.org/x/exp/constraints"

// IsSorted reports whether s is in non-decreasing order.
// Time O(n).
func IsSorted[T constraints.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}

	return true
}

// IsSortedFunc reports whether no element of s sorts before its predecessor
// under less.
// Time O(n).
func IsSortedFunc[T any](s []T, less Less[T]) bool {
	for i := 1; i < len(s); i++ {
		if less(s[i], s[i-1]) {
			return false
		}
	}

	return true
}
