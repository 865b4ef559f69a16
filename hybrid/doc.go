// SPDX-License-Identifier: MIT

// Package hybrid implements the two composite sorts of the suite, built from
// the kernels of the simpler families.
//
// Tim (simplified timsort):
//
//	Cut the slice into runs of MinMerge elements, insertion-sort each run,
//	then merge runs bottom-up with doubling width. There is no natural-run
//	detection and no galloping; the merge skips runs that are already in
//	order across their seam. Stable. O(n log n) time, O(n) extra space.
//	Returns a sorted copy.
//
// Intro (introsort):
//
//	Lomuto quicksort with a recursion budget of 2·⌊log2 n⌋ levels. A window
//	smaller than IntroThreshold is insertion-sorted; a window reached with
//	the budget exhausted is heap-sorted in place (heapsort.SortRange over the
//	inclusive window). Worst case O(n log n), in place, not stable.
//	Stats.Fallbacks counts heap-sort fallbacks and Stats.MaxDepth the deepest
//	recursion level.
package hybrid
