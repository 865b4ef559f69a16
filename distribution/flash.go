// SPDX-License-Identifier: MIT

package distribution

import (
	"fmt"

	"github.com/katalvlaran/lvsort/core"
	"github.com/katalvlaran/lvsort/exchange"
)

// flashClassRatio is the number of classes per element.
const flashClassRatio = 0.43

// Flash returns a sorted copy of s by flash sort.
//
// Steps:
//  1. Classify: m = max(2, ⌊0.43n⌋) classes, class(v) = ⌊c·(v-min)⌋ with
//     c = (m-1)/(max-min), clamped to [0, m-1].
//  2. Count per class and turn the counts into exclusive end positions.
//  3. Permute by cycle chasing: pick the first unplaced position as cycle
//     leader, then repeatedly drop the element in hand at the top free slot
//     of its class and pick up the element found there, until the cycle
//     comes back to the leader. Every element moves exactly once.
//  4. The slice is now ordered by class; insertion sort finishes the job
//     within classes.
//
// Errors: ErrNonFinite; ErrNegativeInput.
func Flash[T core.Number](s []T, opts ...core.Option) ([]T, error) {
	out := core.Clone(s)
	n := len(out)
	if n < 2 {
		return out, nil
	}
	if err := checkFinite(s); err != nil {
		return nil, err
	}
	for i, v := range s {
		if v < 0 {
			return nil, fmt.Errorf("%w: s[%d]=%v", ErrNegativeInput, i, v)
		}
	}

	sr := core.NewSorter(out, core.Ascending[T], core.Resolve(opts...))
	lo, hi := core.MinMax(out)
	if lo == hi {
		return out, nil
	}

	m := max(2, int(flashClassRatio*float64(n)))
	c := float64(m-1) / (float64(hi) - float64(lo))
	class := func(v T) int {
		k := int(c * (float64(v) - float64(lo)))

		return min(max(k, 0), m-1)
	}

	ends := make([]int, m)
	for _, v := range out {
		ends[class(v)]++
	}
	for k := 1; k < m; k++ {
		ends[k] += ends[k-1]
	}

	// Position j is placed once j >= ends[class(out[j])]: its class region has
	// been filled from the top down past it.
	moves, j := 0, 0
	k := class(out[0])
	for moves < n-1 {
		for j >= ends[k] {
			j++
			k = class(out[j])
		}
		hand := out[j]
		for j != ends[k] {
			k = class(hand)
			pos := ends[k] - 1
			out[pos], hand = hand, out[pos]
			ends[k]--
			moves++
		}
	}
	sr.AddWrites(moves)
	sr.Pass()

	exchange.InsertionRange(sr, 0, n)

	return out, nil
}
