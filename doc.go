// Package lvsort is a reference suite of classic sorting algorithms with one
// uniform contract, from the humble bubble sort to introsort, sorting
// networks and a few curiosities.
//
// 🚀 What is in the box?
//
//	• Comparison-exchange: bubble, cocktail, comb, gnome, odd-even, selection,
//	  insertion, shell, cycle                                  (exchange/)
//	• Divide and conquer: merge, quick (functional, Lomuto, iterative), block
//	                                                           (divide/)
//	• Sorting networks: bitonic, Batcher odd-even merge        (network/)
//	• Heap sort and windowed heap sort                         (heapsort/)
//	• Distribution: counting, radix, bucket, pigeonhole, flash, bead
//	                                                           (distribution/)
//	• Hybrids: simplified timsort, introsort                   (hybrid/)
//	• Tree sort over an iterative BST                          (treesort/)
//	• Novelty: spaghetti sort, sleep sort                      (novelty/)
//
// ✨ Shared contract (core/)
//
//   - Generic entry points for ordered values plus …Func variants taking a
//     comparator.
//   - Pure variants return a fresh slice; in-place variants say so in their
//     name or doc.
//   - Functional options: WithStats counts comparisons, swaps, writes, passes,
//     depth and fallbacks; WithOnSwap and WithOnPass trace a run.
//   - Preconditions (non-negative input, power-of-two length, finite floats)
//     are checked up front and reported as wrapped sentinel errors.
//
// Around the algorithms:
//
//	catalog/     - registry of every algorithm with metadata and a resolver
//	               (index, name or unique substring)
//	dataset/     - deterministic inputs: random, sorted, reversed, few-unique…
//	cmd/sortlab  - CLI: list, run (with --trace) and bench
//
// Quick example:
//
//	out := divide.Merge([]int{5, 2, 4, 1})        // [1 2 4 5], input untouched
//	err := network.Bitonic(s)                     // ErrNotPowerOfTwo if len(s) = 7
//	alg, _ := catalog.Lookup("radix")
//	sorted, err := alg.Sort([]int{170, 45, 75})
//
//	go install github.com/katalvlaran/lvsort/cmd/sortlab@latest
package lvsort
