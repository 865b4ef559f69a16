// SPDX-License-Identifier: MIT

package treesort

import "github.com/katalvlaran/lvsort/core"

type node[T any] struct {
	val         T
	left, right *node[T]
}

// BST is an insert-only binary search tree. The zero value is not usable;
// create one with NewBST. Not safe for concurrent use.
type BST[T any] struct {
	root   *node[T]
	sr     *core.Sorter[T]
	size   int
	height int
}

// NewBST returns an empty tree ordered by less. Comparisons are reported to
// the Stats of opts, if any.
func NewBST[T any](less core.Less[T], opts ...core.Option) *BST[T] {
	return &BST[T]{sr: core.NewSorter[T](nil, less, core.Resolve(opts...))}
}

// Insert adds v below the first node it does not sort before.
// Time O(height).
func (t *BST[T]) Insert(v T) {
	n := &node[T]{val: v}
	t.size++
	if t.root == nil {
		t.root = n
		t.height = 1
		t.sr.Enter(1)

		return
	}

	depth := 1
	cur := t.root
	for {
		depth++
		if t.sr.LessValue(v, cur.val) {
			if cur.left == nil {
				cur.left = n
				break
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				break
			}
			cur = cur.right
		}
	}
	t.height = max(t.height, depth)
	t.sr.Enter(depth)
}

// Len returns the number of inserted elements.
func (t *BST[T]) Len() int {
	return t.size
}

// Height returns the number of nodes on the longest root-to-leaf path;
// 0 for an empty tree.
func (t *BST[T]) Height() int {
	return t.height
}

// Walk calls fn for every element in order until fn returns false.
func (t *BST[T]) Walk(fn func(T) bool) {
	var stack []*node[T]
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(cur.val) {
			return
		}
		cur = cur.right
	}
}
