// SPDX-License-Identifier: MIT

package core

// Sorter is an instrumented view over a slice. Every comparison, exchange
// and store made through it is reflected in the resolved Options (Stats and
// hooks). Kernels shared between packages take a *Sorter so a composed
// algorithm (introsort calling heapsort) reports through one set of counters.
//
// A Sorter is not safe for concurrent use and must not outlive the call that
// created it.
type Sorter[T any] struct {
	// Data is the slice being sorted. Kernels index into it directly for
	// reads; writes go through Swap and Set.
	Data []T

	less   Less[T]
	opts   Options
	passes int
}

// NewSorter binds data and less to the resolved options o.
func NewSorter[T any](data []T, less Less[T], o Options) *Sorter[T] {
	return &Sorter[T]{Data: data, less: less, opts: o}
}

// Options returns the options the Sorter was created with.
func (s *Sorter[T]) Options() Options {
	return s.opts
}

// Len returns len(s.Data).
func (s *Sorter[T]) Len() int {
	return len(s.Data)
}

// Less reports whether Data[i] sorts before Data[j].
func (s *Sorter[T]) Less(i, j int) bool {
	return s.LessValue(s.Data[i], s.Data[j])
}

// LessValue reports whether a sorts before b.
func (s *Sorter[T]) LessValue(a, b T) bool {
	if s.opts.Stats != nil {
		s.opts.Stats.Comparisons++
	}

	return s.less(a, b)
}

// Swap exchanges Data[i] and Data[j].
func (s *Sorter[T]) Swap(i, j int) {
	s.Data[i], s.Data[j] = s.Data[j], s.Data[i]
	if s.opts.Stats != nil {
		s.opts.Stats.Swaps++
	}
	if s.opts.OnSwap != nil {
		s.opts.OnSwap(i, j)
	}
}

// Set stores v at position i.
func (s *Sorter[T]) Set(i int, v T) {
	s.Data[i] = v
	s.AddWrites(1)
}

// AddWrites records n stores made outside Data (merge buffers, buckets).
func (s *Sorter[T]) AddWrites(n int) {
	if s.opts.Stats != nil {
		s.opts.Stats.Writes += n
	}
}

// Pass marks the end of a full pass.
func (s *Sorter[T]) Pass() {
	s.passes++
	if s.opts.Stats != nil {
		s.opts.Stats.Passes++
	}
	if s.opts.OnPass != nil {
		s.opts.OnPass(s.passes)
	}
}

// Enter records that recursion reached depth (root call = 1).
func (s *Sorter[T]) Enter(depth int) {
	if s.opts.Stats != nil && depth > s.opts.Stats.MaxDepth {
		s.opts.Stats.MaxDepth = depth
	}
}

// Fallback records a switch to a fallback strategy.
func (s *Sorter[T]) Fallback() {
	if s.opts.Stats != nil {
		s.opts.Stats.Fallbacks++
	}
}
