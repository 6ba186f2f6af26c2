package Trees

import (
	"cmp"
	"math/rand"
)

// Treap is a binary search tree with no repeated values where every node also
// draws a random priority in [0,1), its Meta, and no node has a greater
// priority than its parent. The shape is that of a tree built by inserting
// values in decreasing priority, so the expected depth D is O(log n).
// The zero value isn't usable, create it with NewTreap.
type Treap[T cmp.Ordered] struct {
	base[T, float64]
	rg *rand.Rand
}

// NewTreap returns a Treap holding vs, inserted one by one in the given order.
// Priorities are drawn from rg, a nil rg is replaced by one seeded from the
// global source. The same rg seed and insertion sequence give the same tree.
func NewTreap[T cmp.Ordered](rg *rand.Rand, vs ...T) *Treap[T] {
	if rg == nil {
		rg = rand.New(rand.NewSource(rand.Int63()))
	}
	u := &Treap[T]{base[T, float64]{sh: treapShape[T]{}}, rg}
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

type treapShape[T cmp.Ordered] struct{}

func (treapShape[T]) pull(*Node[T, float64]) {}

// promoteLeft picks the child with the higher priority, the left one on ties.
func (treapShape[T]) promoteLeft(n *Node[T, float64]) bool {
	return n.r == nil || (n.l != nil && n.l.m >= n.r.m)
}

func (treapShape[T]) settle(**Node[T, float64]) {}

// Insert [Tree.Insert]. Recursive.
// The new leaf is rotated up while its priority is greater than its parent's.
// Time: O(D)
func (u *Treap[T]) Insert(v T) bool {
	return u.add(v, func(v T) *Node[T, float64] {
		return &Node[T, float64]{v: v, m: u.rg.Float64()}
	}, func(slot **Node[T, float64], right bool) {
		if cur := *slot; right {
			if cur.r.m > cur.m {
				u.rotateLeft(slot)
			}
		} else if cur.l.m > cur.m {
			u.rotateRight(slot)
		}
	})
}

// Delete [Tree.Delete]. Recursive.
// The node holding v is rotated below its child of higher priority until it
// becomes a leaf, and then unlinked.
// Time: O(D)
func (u *Treap[T]) Delete(v T) error {
	return u.delete(v)
}

// Corrupt [Tree.Corrupt]
// Also checks the heap order of priorities.
func (u *Treap[T]) Corrupt() bool {
	var check func(*Node[T, float64]) bool
	check = func(n *Node[T, float64]) bool {
		if n == nil {
			return true
		}
		if (n.l != nil && n.l.m > n.m) || (n.r != nil && n.r.m > n.m) {
			return false
		}
		return check(n.l) && check(n.r)
	}
	return !check(u.root) || u.corrupt()
}
