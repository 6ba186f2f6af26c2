package Trees

import "cmp"

// BST is an unbalanced binary search tree with no repeated values. Its
// depth D is O(n) in the worst case, as with sorted insertions.
// The zero value isn't usable, create it with NewBST.
type BST[T cmp.Ordered] struct {
	base[T, struct{}]
}

// NewBST returns a BST holding vs, inserted one by one in the given order.
func NewBST[T cmp.Ordered](vs ...T) *BST[T] {
	u := &BST[T]{base[T, struct{}]{sh: plain[T, struct{}]{}}}
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

func bstLeaf[T cmp.Ordered](v T) *Node[T, struct{}] {
	return &Node[T, struct{}]{v: v}
}

// Insert [Tree.Insert]. Recursive.
// Time: O(D)
func (u *BST[T]) Insert(v T) bool {
	return u.add(v, bstLeaf[T], func(**Node[T, struct{}], bool) {})
}

// Delete [Tree.Delete]. Recursive.
// The node holding v is rotated below its left child, or its right child when
// there is no left one, until it becomes a leaf, and then unlinked.
// Time: O(D)
func (u *BST[T]) Delete(v T) error {
	return u.delete(v)
}

// Corrupt [Tree.Corrupt]
func (u *BST[T]) Corrupt() bool {
	return u.corrupt()
}
