// SPDX-License-Identifier: MIT

// Package dataset builds deterministic integer inputs for tests, examples and
// benchmarks of the sorting suite.
//
// What:
//
//   - Build(shape, n, opts...) returns a fresh []int of length n in one of the
//     classic adversarial and friendly shapes:
//     Random, Sorted, Reversed, AllEqual, FewUnique, Sawtooth, OrganPipe,
//     NearlySorted.
//   - Values are non-negative and bounded by MaxValue (exclusive) so every
//     distribution sort in the suite accepts them.
//
// Why:
//
//   - Early-exit algorithms are judged on Sorted input, Lomuto quicksort on
//     Sorted/Reversed input, counting-style sorts on range width. Having the
//     shapes in one place keeps test and benchmark inputs identical.
//
// Determinism:
//
//	Same (shape, n, options) ⇒ same output, on every platform. Randomness comes
//	only from WithSeed / WithRand; seed 0 maps to a fixed default seed.
//
// Complexity:
//
//	O(n) time and memory for every shape.
package dataset
