// SPDX-License-Identifier: MIT

package distribution

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
)

// radixBase is the digit base of Radix.
const radixBase = 10

// Radix returns a sorted copy of s by least-significant-digit decimal radix
// sort. One stable counting pass runs per decimal digit of max(s), so an
// all-zero input needs no pass.
//
// Errors: ErrNegativeInput.
func Radix[T constraints.Integer](s []T, opts ...core.Option) ([]T, error) {
	out := core.Clone(s)
	if len(s) < 2 {
		return out, nil
	}
	hi, err := nonNegativeMax(s)
	if err != nil {
		return nil, err
	}

	sr := core.NewSorter(out, core.Ascending[T], core.Resolve(opts...))
	buf := make([]T, len(out))
	for exp := uint64(1); hi/exp > 0; exp *= radixBase {
		digitPass(sr, buf, exp)
		// exp*radixBase would exceed hi: stop before it can overflow.
		if hi/exp < radixBase {
			break
		}
	}

	return out, nil
}

// digitPass stably sorts sr.Data by the decimal digit selected by exp.
func digitPass[T constraints.Integer](sr *core.Sorter[T], buf []T, exp uint64) {
	var counts [radixBase]int
	digit := func(v T) int { return int(uint64(v) / exp % radixBase) }

	for _, v := range sr.Data {
		counts[digit(v)]++
	}
	for d := 1; d < radixBase; d++ {
		counts[d] += counts[d-1]
	}
	for i := len(sr.Data) - 1; i >= 0; i-- {
		d := digit(sr.Data[i])
		counts[d]--
		buf[counts[d]] = sr.Data[i]
	}
	copy(sr.Data, buf)
	sr.AddWrites(2 * len(buf))
	sr.Pass()
}
