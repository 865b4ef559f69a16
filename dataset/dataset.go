// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strings"
)

// Shape names an input distribution.
type Shape string

// Supported shapes.
const (
	Random       Shape = "random"
	Sorted       Shape = "sorted"
	Reversed     Shape = "reversed"
	AllEqual     Shape = "all-equal"
	FewUnique    Shape = "few-unique"
	Sawtooth     Shape = "sawtooth"
	OrganPipe    Shape = "organ-pipe"
	NearlySorted Shape = "nearly-sorted"
)

// nearlySortedDivisor controls how many random transpositions NearlySorted
// applies: one per nearlySortedDivisor elements, at least one.
const nearlySortedDivisor = 20

// Shapes lists every supported shape in a stable order.
func Shapes() []Shape {
	return []Shape{Random, Sorted, Reversed, AllEqual, FewUnique, Sawtooth, OrganPipe, NearlySorted}
}

// ParseShape maps a case-insensitive name onto a Shape.
func ParseShape(name string) (Shape, error) {
	want := Shape(strings.ToLower(strings.TrimSpace(name)))
	for _, s := range Shapes() {
		if s == want {
			return s, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

// Build returns a new slice of length n in the requested shape.
// Every value lies in [0, MaxValue).
//
// Errors: ErrNegativeLength, ErrUnknownShape.
// Complexity: O(n).
func Build(shape Shape, n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeLength, n)
	}
	cfg := newConfig(opts...)
	out := make([]int, n)

	switch shape {
	case Random:
		for i := range out {
			out[i] = cfg.rng.Intn(cfg.maxValue)
		}
	case Sorted:
		ramp(out, cfg.maxValue)
	case Reversed:
		ramp(out, cfg.maxValue)
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	case AllEqual:
		for i := range out {
			out[i] = cfg.maxValue / 2
		}
	case FewUnique:
		for i := range out {
			out[i] = cfg.rng.Intn(cfg.distinct) * cfg.maxValue / cfg.distinct
		}
	case Sawtooth:
		period := (n + cfg.teeth - 1) / cfg.teeth
		for i := 0; i < n; i += period {
			ramp(out[i:min(i+period, n)], cfg.maxValue)
		}
	case OrganPipe:
		half := (n + 1) / 2
		for i := range out {
			out[i] = min(i, n-1-i) * cfg.maxValue / half
		}
	case NearlySorted:
		ramp(out, cfg.maxValue)
		if n >= 2 {
			swaps := max(1, n/nearlySortedDivisor)
			for k := 0; k < swaps; k++ {
				i, j := cfg.rng.Intn(n), cfg.rng.Intn(n)
				out[i], out[j] = out[j], out[i]
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, string(shape))
	}

	return out, nil
}

// MustBuild is Build for statically known arguments; it panics on error.
func MustBuild(shape Shape, n int, opts ...Option) []int {
	out, err := Build(shape, n, opts...)
	if err != nil {
		panic(err)
	}

	return out
}

// Shuffled returns a random permutation of 0..n-1.
func Shuffled(n int, opts ...Option) []int {
	cfg := newConfig(opts...)
	out := make([]int, max(n, 0))
	for i := range out {
		out[i] = i
	}
	shuffleInPlace(out, cfg.rng)

	return out
}

// ramp fills a with a non-decreasing sequence spanning [0, maxValue).
func ramp(a []int, maxValue int) {
	n := len(a)
	for i := range a {
		a[i] = i * maxValue / n
	}
}
