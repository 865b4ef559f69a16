// SPDX-License-Identifier: MIT

// Package core defines the contract shared by every sorting algorithm in
// lvsort: the comparator type, element constraints, functional options,
// instrumentation counters and sortedness checks.
//
// What:
//
//   - Less[T]: a strict weak order used by all comparator entry points (…Func).
//   - Number: the numeric constraint (integers and floats) for distribution sorts.
//   - Option / Options: functional configuration resolved per call.
//     Constructors (WithX) validate and panic on nonsensical arguments;
//     algorithms never panic on user data.
//   - Stats: comparison, swap, write, pass, depth and fallback counters.
//   - Sorter[T]: an instrumented view over a slice; the kernels exported by the
//     family packages (InsertionRange, MergeRange, LomutoPartition, SortRange)
//     operate on *Sorter[T] so that counters and hooks stay consistent when one
//     algorithm composes another.
//
// Why:
//
//   - One place to observe the cost of an algorithm: early exit on sorted input
//     is verified by counting comparisons, not by timing.
//   - Hooks (WithOnSwap, WithOnPass) replace ad-hoc verbose printing: callers
//     decide how to render a trace.
//
// Lifecycle:
//
//	Every auxiliary structure an algorithm allocates is scoped to one call.
//	There is no package-level mutable state; a Stats value is only written by
//	the call it was passed to.
//
// Complexity:
//
//   - Instrumentation adds O(1) work per comparison/swap/write.
//   - IsSorted / IsSortedFunc: O(n) time, O(1) memory.
package core
