package Trees

import "cmp"

// Node of a binary search tree. M is the balancing data a variant keeps
// next to the value: struct{} for BST and Splay, the subtree height for AVL,
// the Color for RBTree, the priority for Treap and the subtree size for SBTree.
// A Node returned by a tree stays owned by that tree; it must not be modified
// and is only valid until the next mutation.
type Node[T cmp.Ordered, M any] struct {
	v    T
	l, r *Node[T, M]
	m    M
}

// Value stored in n.
func (n *Node[T, M]) Value() T {
	return n.v
}

func (n *Node[T, M]) Left() *Node[T, M] {
	return n.l
}

func (n *Node[T, M]) Right() *Node[T, M] {
	return n.r
}

// Meta returns the balancing data of n.
func (n *Node[T, M]) Meta() M {
	return n.m
}

// rotateLeft promotes the right child of *n into its place. n is passed by
// reference in order to modify the parent's link.
// Time: O(1); Space: O(1)
func rotateLeft[T cmp.Ordered, M any](n **Node[T, M]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	*n = rc
}

// rotateRight promotes the left child of *n into its place. n is passed by
// reference in order to modify the parent's link.
// Time: O(1); Space: O(1)
func rotateRight[T cmp.Ordered, M any](n **Node[T, M]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	*n = lc
}

// invalid reports values that can't take part in a total order (NaN).
func invalid[T cmp.Ordered](v T) bool {
	return v != v
}
