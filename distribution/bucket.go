// SPDX-License-Identifier: MIT

package distribution

import (
	"github.com/katalvlaran/lvsort/core"
	"github.com/katalvlaran/lvsort/exchange"
)

// Bucket returns a sorted copy of s using Options.Buckets equal-width buckets
// spanning [min(s), max(s)]. Values of any sign are accepted.
//
// The bucket of v is floor((v-min)/width) with width = (max-min)/k, clamped to
// the last bucket so that max itself lands in bucket k-1. When every value is
// equal the width is zero and a copy is returned as is. Each bucket is
// insertion-sorted, so the result is stable.
//
// Errors: ErrNonFinite for NaN or ±Inf.
func Bucket[T core.Number](s []T, opts ...core.Option) ([]T, error) {
	if len(s) < 2 {
		return core.Clone(s), nil
	}
	if err := checkFinite(s); err != nil {
		return nil, err
	}
	o := core.Resolve(opts...)
	lo, hi := core.MinMax(s)
	if lo == hi {
		return core.Clone(s), nil
	}

	k := o.Buckets
	width := (float64(hi) - float64(lo)) / float64(k)
	buckets := make([][]T, k)
	for _, v := range s {
		i := bucketIndex(float64(v)-float64(lo), width, k)
		buckets[i] = append(buckets[i], v)
	}

	out := make([]T, 0, len(s))
	for _, b := range buckets {
		exchange.InsertionRange(core.NewSorter(b, core.Ascending[T], o), 0, len(b))
		out = append(out, b...)
	}
	sr := core.NewSorter(out, core.Ascending[T], o)
	sr.AddWrites(2 * len(out))
	sr.Pass()

	return out, nil
}

// bucketIndex maps an offset from the minimum onto [0, k).
// NaN offsets (possible when a huge integer range collapses in float64)
// go to bucket 0.
func bucketIndex(offset, width float64, k int) int {
	f := offset / width
	if !(f >= 0) {
		return 0
	}
	if f >= float64(k) {
		return k - 1
	}

	return int(f)
}
