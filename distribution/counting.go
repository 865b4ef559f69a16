// SPDX-License-Identifier: MIT

package distribution

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
)

// Counting returns a sorted copy of s, whose values must be non-negative.
//
// Errors: ErrNegativeInput; ErrRangeTooLarge when max(s)+1 counters exceed
// Options.MaxAux.
func Counting[T constraints.Integer](s []T, opts ...core.Option) ([]T, error) {
	if len(s) < 2 {
		return core.Clone(s), nil
	}
	o := core.Resolve(opts...)
	hi, err := nonNegativeMax(s)
	if err != nil {
		return nil, err
	}
	if err = checkAux(span(hi), o); err != nil {
		return nil, err
	}

	return countingByKey(s, func(v T) int { return int(v) }, int(hi), o), nil
}

// CountingFunc returns a copy of s sorted by key, which must map every
// element to a non-negative int. Records with equal keys keep their input
// order.
//
// Errors: ErrNegativeInput for a negative key; ErrRangeTooLarge when the
// largest key is not below Options.MaxAux.
func CountingFunc[E any](s []E, key func(E) int, opts ...core.Option) ([]E, error) {
	if len(s) < 2 {
		return core.Clone(s), nil
	}
	o := core.Resolve(opts...)
	hi := 0
	for i, e := range s {
		k := key(e)
		if k < 0 {
			return nil, fmt.Errorf("%w: key(s[%d])=%d", ErrNegativeInput, i, k)
		}
		hi = max(hi, k)
	}
	if err := checkAux(span(uint64(hi)), o); err != nil {
		return nil, err
	}

	return countingByKey(s, key, hi, o), nil
}

// countingByKey is the stable counting pass over keys in [0, hi].
func countingByKey[E any](s []E, key func(E) int, hi int, o core.Options) []E {
	counts := make([]int, hi+1)
	for _, e := range s {
		counts[key(e)]++
	}
	for k := 1; k <= hi; k++ {
		counts[k] += counts[k-1]
	}

	// counts[k] is now the exclusive end of key k's region; walking the input
	// backwards fills each region from its end, preserving input order.
	out := make([]E, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		k := key(s[i])
		counts[k]--
		out[counts[k]] = s[i]
	}
	sr := core.NewSorter[E](out, nil, o)
	sr.AddWrites(len(out))
	sr.Pass()

	return out
}
