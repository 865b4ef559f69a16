// SPDX-License-Identifier: MIT

package core

import "fmt"

// Stats accumulates the observable cost of sorting calls.
type Stats struct {
	// Comparisons counts calls to the order (Less) made by the algorithm.
	Comparisons int

	// Swaps counts exchanges of two positions.
	Swaps int

	// Writes counts single-element stores (shifts, merges, placements).
	// A swap is not counted as two writes.
	Writes int

	// Passes counts completed passes of pass-based algorithms.
	Passes int

	// MaxDepth is the deepest recursion level reached (root call = 1).
	MaxDepth int

	// Fallbacks counts strategy switches (introsort → heapsort).
	Fallbacks int
}

// Reset zeroes every counter.
func (st *Stats) Reset() {
	*st = Stats{}
}

// String renders the counters on one line.
func (st Stats) String() string {
	return fmt.Sprintf("comparisons=%d swaps=%d writes=%d passes=%d depth=%d fallbacks=%d",
		st.Comparisons, st.Swaps, st.Writes, st.Passes, st.MaxDepth, st.Fallbacks)
}
