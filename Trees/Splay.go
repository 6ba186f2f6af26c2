package Trees

import (
	"cmp"

	"github.com/g-m-twostay/datality"
)

// Splay is a binary search tree with no repeated values that moves every
// value it inserts or finds to the root, one rotation per level. Recently
// accessed values stay near the root. Delete, Successor, Predecessor and Has
// don't restructure the tree.
// The zero value isn't usable, create it with NewSplay.
type Splay[T cmp.Ordered] struct {
	base[T, struct{}]
}

// NewSplay returns a Splay holding vs, inserted one by one in the given order.
func NewSplay[T cmp.Ordered](vs ...T) *Splay[T] {
	u := &Splay[T]{base[T, struct{}]{sh: plain[T, struct{}]{}}}
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// splay searches v below *slot and rotates each node of the path towards the
// side it was left by, so that the node holding v takes its place. It returns
// whether v was found, and on a miss nothing moves. If add is true a missing
// v is inserted as a leaf first, which inserted reports.
func (u *Splay[T]) splay(slot **Node[T, struct{}], v T, add bool) (found, inserted bool) {
	cur := *slot
	if cur == nil {
		if add {
			*slot = &Node[T, struct{}]{v: v}
			return true, true
		}
		return false, false
	}
	if v < cur.v {
		if found, inserted = u.splay(&cur.l, v, add); found {
			u.rotateRight(slot)
		}
	} else if v > cur.v {
		if found, inserted = u.splay(&cur.r, v, add); found {
			u.rotateLeft(slot)
		}
	} else {
		found = true
	}
	return
}

// Insert [Tree.Insert]. Recursive.
// v ends at the root, even when it was already present.
// Time: amortized O(log n)
func (u *Splay[T]) Insert(v T) bool {
	if invalid(v) {
		return false
	}
	if _, inserted := u.splay(&u.root, v, true); !inserted {
		return false
	}
	u.sz++
	return true
}

// Search [Tree.Search]. Recursive.
// The returned node is the new root. A failed search leaves the tree as it was.
// Time: amortized O(log n)
func (u *Splay[T]) Search(v T) (*Node[T, struct{}], error) {
	if invalid(v) {
		return nil, datality.NotFoundError[T]{Value: v}
	}
	if found, _ := u.splay(&u.root, v, false); !found {
		return nil, datality.NotFoundError[T]{Value: v}
	}
	return u.root, nil
}

// Delete [Tree.Delete]. Recursive.
// Same as [BST.Delete].
func (u *Splay[T]) Delete(v T) error {
	return u.delete(v)
}

// Corrupt [Tree.Corrupt]
func (u *Splay[T]) Corrupt() bool {
	return u.corrupt()
}
