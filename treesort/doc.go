// SPDX-License-Identifier: MIT

// Package treesort implements tree sort over an unbalanced binary search
// tree.
//
// What:
//
//   - BST[T] is an insert-only binary search tree ordered by a core.Less.
//     Elements equivalent to a node go to its right subtree, so an in-order
//     walk yields equal elements in insertion order.
//   - Insert and Walk are iterative (descent loop, explicit stack), so a
//     degenerate tree of height n does not grow the goroutine stack.
//   - Tree / TreeFunc insert every element, walk in order and discard the tree.
//
// The tree is not rebalanced: sorted or reverse-sorted input builds a list
// of height n and costs O(n²) comparisons. Random input gives expected height
// O(log n) and O(n log n) time.
//
// Stable. Extra space O(n) for the nodes.
package treesort
