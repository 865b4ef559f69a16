// SPDX-License-Identifier: MIT

// Package novelty holds the physical-analogy sorts: spaghetti sort and sleep
// sort. They are teaching curiosities, not practical algorithms.
//
// What:
//
//   - Spaghetti / SpaghettiFunc - hold all rods upright, lower a hand until it
//     touches the tallest, pull it out, repeat. Implemented as repeated
//     maximum extraction filling the output from the end. O(n²), stable.
//   - Sleep      - deterministic simulation of sleep sort: a clock ticks from
//     0 to max(s) and at each tick every value equal to the tick wakes up and
//     is emitted. O(n + max) time and space; guarded by core.WithMaxAux.
//   - SleepTimed - the real thing: one goroutine per element sleeps v·unit
//     and appends v on wake-up. The output order depends on the scheduler and
//     is NOT guaranteed to be sorted; only the multiset is. Cancel through ctx.
//
// Errors:
//
//	ErrNegativeInput   - a negative value given to Sleep or SleepTimed.
//	ErrRangeTooLarge   - the simulated clock or a sleep duration is too long.
//	ErrInvalidUnit     - SleepTimed with a non-positive unit.
package novelty
