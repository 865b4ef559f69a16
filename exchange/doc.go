// SPDX-License-Identifier: MIT

// Package exchange implements the comparison-exchange family of sorts: the
// algorithms that only ever compare two positions and exchange (or shift)
// elements in place.
//
// What:
//
//   - Bubble / BubbleInPlace / BubbleFunc - adjacent swaps, early exit after a
//     clean pass. Bubble is pure (returns a sorted copy), the others mutate.
//   - Cocktail    - bidirectional bubble passes, shrinking both ends.
//   - Comb        - bubble with a gap shrinking by 1.3 down to 1.
//   - Gnome       - one cursor walking forward, stepping back on inversion.
//   - OddEven     - alternating odd/even pair rounds until a clean round.
//   - Selection   - select the minimum of the suffix; no early exit, always
//     n(n-1)/2 comparisons.
//   - Insertion   - shift larger elements right; InsertionRange is the shared
//     kernel used by block, tim and intro sort.
//   - Shell       - gapped insertion with gaps n/2, n/4, …, 1.
//   - Cycle       - minimal-write cycle sort; returns the number of writes.
//
// Every algorithm has an ordered entry point for constraints.Ordered values
// and a …Func variant taking a core.Less comparator. All accept core.Option:
// WithStats collects counters, WithOnSwap and WithOnPass trace the run.
//
// Stability:
//
//	Stable:   Bubble, Cocktail, Gnome, OddEven, Insertion.
//	Unstable: Comb, Selection, Shell, Cycle.
//
// Complexity:
//
//	Time O(n²) worst case for all (Shell with halving gaps included); O(n) best
//	case for the early-exit algorithms on sorted input. Extra space O(1).
//
// Errors:
//
//	None. A panicking comparator leaves the slice in an unspecified
//	permutation of its input.
package exchange
