// SPDX-License-Identifier: MIT

package distribution

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
)

// Bead returns a sorted copy of s by gravity (bead) sort.
//
// Every value v becomes a row of v beads on an n×max(s) abacus. Beads fall
// down their column, after which row r holds as many beads as the r-th
// smallest value. The grid is materialised, so time and space are O(n·max).
//
// Errors: ErrNegativeInput; ErrRangeTooLarge when n·max cells exceed
// Options.MaxAux.
func Bead[T constraints.Integer](s []T, opts ...core.Option) ([]T, error) {
	if len(s) < 2 {
		return core.Clone(s), nil
	}
	o := core.Resolve(opts...)
	hi, err := nonNegativeMax(s)
	if err != nil {
		return nil, err
	}
	rows := uint64(len(s))
	cells := uint64(math.MaxUint64)
	if hi <= math.MaxUint64/rows {
		cells = rows * hi
	}
	if err = checkAux(cells, o); err != nil {
		return nil, err
	}

	n, width := len(s), int(hi)
	grid := make([]bool, n*width)
	for r, v := range s {
		row := grid[r*width : (r+1)*width]
		for c := 0; c < int(v); c++ {
			row[c] = true
		}
	}

	// Drop: every column keeps its bead count, stacked at the bottom.
	for c := 0; c < width; c++ {
		beads := 0
		for r := 0; r < n; r++ {
			if grid[r*width+c] {
				beads++
				grid[r*width+c] = false
			}
		}
		for r := n - beads; r < n; r++ {
			grid[r*width+c] = true
		}
	}

	out := make([]T, n)
	for r := range out {
		row := grid[r*width : (r+1)*width]
		count := 0
		for count < width && row[count] {
			count++
		}
		out[r] = T(count)
	}
	sr := core.NewSorter(out, core.Ascending[T], o)
	sr.AddWrites(n)
	sr.Pass()

	return out, nil
}
