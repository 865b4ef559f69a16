// SPDX-License-Identifier: MIT

// Package heapsort implements in-place heap sort over a binary max-heap laid
// out in the slice itself.
//
// What:
//
//   - Heap / HeapFunc sort a whole slice.
//   - SortRange heap-sorts only the inclusive window [low, high] of a
//     core.Sorter, using offset index arithmetic
//     (left child of i = low + 2*(i-low) + 1). Positions outside the window are
//     never read or written. Introsort uses it as its fallback.
//
// Algorithm:
//
//  1. Heapify bottom-up: sift down every internal node from the last one
//     (n/2-1) to the root.
//  2. Repeatedly swap the root (maximum) with the last heap slot, shrink the
//     heap by one and sift the new root down. Sift-down follows the larger
//     child.
//
// Complexity:
//
//	Time O(n log n) in every case, extra space O(1). Not stable.
package heapsort
