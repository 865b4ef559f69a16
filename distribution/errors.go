// SPDX-License-Identifier: MIT

package distribution

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvsort/core"
)

var (
	// ErrNegativeInput indicates a negative value given to a sort whose domain
	// is the non-negative integers (or non-negative numbers for Flash).
	ErrNegativeInput = errors.New("distribution: negative input")

	// ErrNonFinite indicates a NaN or infinite floating-point value.
	ErrNonFinite = errors.New("distribution: non-finite input")

	// ErrRangeTooLarge indicates that the auxiliary storage implied by the
	// value range exceeds Options.MaxAux.
	ErrRangeTooLarge = errors.New("distribution: value range too large")
)

// nonNegativeMax returns the maximum of s as uint64, or ErrNegativeInput
// naming the first offending index. s must be non-empty.
func nonNegativeMax[T constraints.Integer](s []T) (uint64, error) {
	var hi uint64
	for i, v := range s {
		if v < 0 {
			return 0, fmt.Errorf("%w: s[%d]=%d", ErrNegativeInput, i, v)
		}
		if u := uint64(v); u > hi {
			hi = u
		}
	}

	return hi, nil
}

// checkFinite rejects NaN and ±Inf. Integers are always finite.
func checkFinite[T core.Number](s []T) error {
	for i, v := range s {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: s[%d]=%v", ErrNonFinite, i, v)
		}
	}

	return nil
}

// span returns hi+1 saturated at math.MaxUint64: the number of cells needed
// to index every value of [0, hi].
func span(hi uint64) uint64 {
	if hi == math.MaxUint64 {
		return hi
	}

	return hi + 1
}

// checkAux rejects an auxiliary allocation of cells above the configured cap.
func checkAux(cells uint64, o core.Options) error {
	if cells > uint64(o.MaxAux) {
		return fmt.Errorf("%w: need %d cells, limit %d", ErrRangeTooLarge, cells, o.MaxAux)
	}

	return nil
}
