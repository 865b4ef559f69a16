// SPDX-License-Identifier: MIT

// Package network implements the two classic sorting networks: Batcher's
// bitonic sorter and Batcher's odd–even merge sorter.
//
// A sorting network is a fixed sequence of compare-exchange operations on
// index pairs. The pairs depend only on the length, never on the data, which
// is what makes networks attractive for hardware and SIMD lanes.
// Comparators exposes that sequence for the odd–even merge network.
//
// Precondition:
//
//	len(s) must be a power of two. Lengths 0 and 1 are accepted as already
//	sorted. Any other length yields ErrNotPowerOfTwo and s is left untouched.
//
// Complexity:
//
//	Bitonic:        O(n log² n) comparators, depth O(log² n).
//	Odd–even merge: O(n log² n) comparators with a smaller constant.
//	Both sort in place with O(log n) recursion.
//
// Neither network is stable.
package network
