// SPDX-License-Identifier: MIT

// Package distribution implements the non-comparison sorts that place
// elements by value: counting, radix, bucket, pigeonhole, flash and bead sort.
//
// What:
//
//   - Counting   - counts per value, prefix sums, stable back-to-front
//     placement. CountingFunc sorts records by an integer key.
//   - Radix      - LSD decimal radix sort, one stable digit pass per decimal
//     digit of the maximum.
//   - Bucket     - k equal-width buckets over [min, max] (core.WithBuckets),
//     each insertion-sorted, concatenated. Accepts any sign.
//   - Pigeonhole - one hole per value of [min, max].
//   - Flash      - classify into m = max(2, ⌊0.43n⌋) classes, permute by cycle
//     chasing, finish with insertion sort.
//   - Bead       - gravity sort on an n×max grid.
//
// Contract:
//
//   - Every function returns a new slice and an error; the input is never
//     modified.
//   - Preconditions are checked before any auxiliary allocation. Violations
//     return a wrapped sentinel (ErrNegativeInput, ErrNonFinite,
//     ErrRangeTooLarge); callers branch with errors.Is.
//   - Empty and single-element inputs are returned as copies without
//     validation.
//   - core.WithMaxAux caps auxiliary cells: count arrays, holes and bead cells.
//
// Complexity (k = value range, d = decimal digits of max):
//
//	Counting, Pigeonhole: O(n + k) time and space.
//	Radix:                O(d·(n + 10)).
//	Bucket:               O(n) expected for uniform data, O(n²) worst.
//	Flash:                O(n) expected, O(n²) worst (insertion cleanup).
//	Bead:                 O(n·max) time and space.
//
// Stability: Counting, CountingFunc, Radix, Bucket and Pigeonhole are stable
// (for plain integers stability is unobservable); Flash and Bead are not.
package distribution
