// SPDX-License-Identifier: MIT

// Package core: functional configuration shared by all algorithms.
//
// Contract:
//   - Options are functional (type Option func(*Options)) and resolved per call.
//   - WithX constructors validate their argument and PANIC on meaningless input
//     (negative limits, nil hooks). Algorithms themselves never panic on data.
//   - Fields are consulted only by the algorithms that need them: MaxAux by the
//     distribution sorts, Buckets by bucket sort; comparison sorts ignore both.
package core

import "fmt"

// Defaults (single source of truth).
const (
	// DefaultMaxAux caps the number of auxiliary cells (counters, holes, bead
	// cells, simulated ticks) a distribution sort may allocate: 64Mi cells.
	DefaultMaxAux = 1 << 26

	// DefaultBuckets is the bucket count used by bucket sort.
	DefaultBuckets = 10
)

const (
	panicMaxAuxInvalid  = "core: WithMaxAux: limit must be positive"
	panicBucketsInvalid = "core: WithBuckets: bucket count must be >= 1"
	panicStatsNil       = "core: WithStats(nil)"
	panicOnSwapNil      = "core: WithOnSwap(nil)"
	panicOnPassNil      = "core: WithOnPass(nil)"
)

// Option configures one sorting call.
type Option func(*Options)

// Options holds the resolved configuration of a sorting call.
type Options struct {
	// Stats, if non-nil, accumulates counters for the call.
	// Counters are added to, not reset; call Stats.Reset between runs.
	Stats *Stats

	// OnSwap, if non-nil, is invoked after positions i and j were exchanged.
	OnSwap func(i, j int)

	// OnPass, if non-nil, is invoked after each completed pass of a pass-based
	// algorithm, with the 1-based pass number.
	OnPass func(pass int)

	// MaxAux bounds the auxiliary cells of distribution sorts.
	MaxAux int

	// Buckets is the number of buckets used by bucket sort.
	Buckets int
}

// DefaultOptions returns Options with:
//   - no counters and no hooks
//   - MaxAux = DefaultMaxAux
//   - Buckets = DefaultBuckets
func DefaultOptions() Options {
	return Options{
		Stats:   nil,
		OnSwap:  nil,
		OnPass:  nil,
		MaxAux:  DefaultMaxAux,
		Buckets: DefaultBuckets,
	}
}

// Resolve applies opts over DefaultOptions.
func Resolve(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithStats collects counters into st.
func WithStats(st *Stats) Option {
	if st == nil {
		panic(panicStatsNil)
	}

	return func(o *Options) { o.Stats = st }
}

// WithOnSwap installs a hook called after every exchange of two positions.
func WithOnSwap(fn func(i, j int)) Option {
	if fn == nil {
		panic(panicOnSwapNil)
	}

	return func(o *Options) { o.OnSwap = fn }
}

// WithOnPass installs a hook called after every completed pass.
func WithOnPass(fn func(pass int)) Option {
	if fn == nil {
		panic(panicOnPassNil)
	}

	return func(o *Options) { o.OnPass = fn }
}

// WithMaxAux sets the auxiliary-cell budget of distribution sorts.
// Panics if n <= 0.
func WithMaxAux(n int) Option {
	if n <= 0 {
		panic(panicMaxAuxInvalid)
	}

	return func(o *Options) { o.MaxAux = n }
}

// WithBuckets sets the bucket count of bucket sort.
// Panics if k < 1.
func WithBuckets(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("%s (got %d)", panicBucketsInvalid, k))
	}

	return func(o *Options) { o.Buckets = k }
}
