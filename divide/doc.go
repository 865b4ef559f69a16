// SPDX-License-Identifier: MIT

// Package divide implements the divide-and-conquer sorts that split by
// position or by pivot: merge sort, three quicksort variants and block sort.
//
// What:
//
//   - Merge / MergeFunc           - top-down merge sort, midpoint split, stable.
//     Returns a sorted copy.
//   - Quick / QuickFunc           - functional quicksort: pivot s[len/2],
//     three-way split into <, == and > lists. Returns a new slice; stable.
//   - QuickInPlace / …Func        - recursive Lomuto quicksort, pivot = last
//     element of the window.
//   - QuickIterative / …Func      - the same partition driven by an explicit
//     stack; the smaller side is always processed first so the stack holds
//     O(log n) windows.
//   - Block / BlockFunc           - insertion sort on blocks of floor(√n)
//     elements, then bottom-up merges doubling the run width. Stable.
//
// Shared kernels (used by the hybrid package):
//
//   - MergeRange(sr, buf, lo, mid, hi) merges two adjacent sorted runs.
//   - MergeRuns(sr, buf, width) merges runs of the given width bottom-up.
//   - LomutoPartition(sr, lo, hi) partitions the inclusive window [lo, hi].
//
// Complexity:
//
//	Merge, Block:    O(n log n) time, O(n) extra space.
//	Quick:           O(n log n) expected, O(n²) worst; O(n) extra per level.
//	QuickInPlace:    O(n²) on sorted input with recursion depth n.
//	QuickIterative:  same time bounds, O(log n) stack.
//
// Errors:
//
//	None; empty and single-element inputs are returned unchanged.
package divide
