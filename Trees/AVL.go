package Trees

import (
	"cmp"

	"github.com/sirupsen/logrus"
)

// AVL is a binary search tree with no repeated values that keeps, at every
// node, the heights of the two subtrees within 1 of each other. The height of
// each subtree is stored as the node's Meta; a leaf weighs 1 and an absent
// child 0. The depth D is less than 1.44*log2(n+2).
// The zero value isn't usable, create it with NewAVL.
type AVL[T cmp.Ordered] struct {
	base[T, int]
}

// NewAVL returns an AVL holding vs, inserted one by one in the given order.
func NewAVL[T cmp.Ordered](vs ...T) *AVL[T] {
	u := &AVL[T]{base[T, int]{sh: avlShape[T]{}}}
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// weight of the subtree at n.
func weight[T cmp.Ordered](n *Node[T, int]) int {
	if n == nil {
		return 0
	}
	return n.m
}

type avlShape[T cmp.Ordered] struct{}

func (avlShape[T]) pull(n *Node[T, int]) {
	n.m = max(weight(n.l), weight(n.r)) + 1
}

// promoteLeft picks the taller child, which keeps the two subtrees of the
// sinking node within 2 of each other.
func (avlShape[T]) promoteLeft(n *Node[T, int]) bool {
	return weight(n.l) >= weight(n.r)
}

func (s avlShape[T]) rotateLeft(n **Node[T, int]) {
	rotateLeft(n)
	s.pull((*n).l)
	s.pull(*n)
}

func (s avlShape[T]) rotateRight(n **Node[T, int]) {
	rotateRight(n)
	s.pull((*n).r)
	s.pull(*n)
}

// rebalance *slot whose subtrees differ by at most 2 in height, with a single
// rotation, or a double one when the taller grandchild is the inner one.
// Time: O(1)
func (s avlShape[T]) rebalance(slot **Node[T, int]) {
	cur := *slot
	b := weight(cur.r) - weight(cur.l)
	if (b > 1 || b < -1) && tracing() {
		Log.WithFields(logrus.Fields{"op": "rebalance", "node": cur.v, "balance": b}).Debug("rotating")
	}
	switch {
	case b > 1:
		if weight(cur.r.l) > weight(cur.r.r) {
			s.rotateRight(&cur.r)
		}
		s.rotateLeft(slot)
	case b < -1:
		if weight(cur.l.r) > weight(cur.l.l) {
			s.rotateLeft(&cur.l)
		}
		s.rotateRight(slot)
	default:
		s.pull(cur)
	}
}

// settle joins the two balanced subtrees of *slot under it, however much
// their heights differ. The node descends the inner spine of the taller
// subtree until the heights match, and every level is rebalanced on the way
// back. The result is at most 1 taller than the taller subtree.
// Time: O(|height(l)-height(r)|)
func (s avlShape[T]) settle(slot **Node[T, int]) {
	cur := *slot
	hl, hr := weight(cur.l), weight(cur.r)
	if (hl > hr+1 || hr > hl+1) && tracing() {
		Log.WithFields(logrus.Fields{"op": "settle", "node": cur.v, "left": hl, "right": hr}).Debug("joining")
	}
	switch {
	case hl > hr+1:
		l := cur.l
		cur.l, l.r = l.r, cur
		*slot = l
		s.settle(&l.r)
		s.rebalance(slot)
	case hr > hl+1:
		r := cur.r
		cur.r, r.l = r.l, cur
		*slot = r
		s.settle(&r.l)
		s.rebalance(slot)
	default:
		s.pull(cur)
	}
}

func avlLeaf[T cmp.Ordered](v T) *Node[T, int] {
	return &Node[T, int]{v: v, m: 1}
}

// Insert [Tree.Insert]. Recursive.
// Every ancestor of the new leaf updates its weight, the first unbalanced one
// is fixed with at most two rotations which restore its former height.
// Time: O(D)
func (u *AVL[T]) Insert(v T) bool {
	return u.add(v, avlLeaf[T], func(slot **Node[T, int], _ bool) {
		avlShape[T]{}.rebalance(slot)
	})
}

// Delete [Tree.Delete]. Recursive.
// The node holding v is rotated below its taller child until it becomes a
// leaf, then every subtree it went through is settled bottom-up.
// Time: O(D)
func (u *AVL[T]) Delete(v T) error {
	return u.delete(v)
}

// Corrupt [Tree.Corrupt]
// Also checks every stored weight and balance factor.
func (u *AVL[T]) Corrupt() bool {
	var check func(*Node[T, int]) (int, bool)
	check = func(n *Node[T, int]) (int, bool) {
		if n == nil {
			return 0, true
		}
		hl, okl := check(n.l)
		hr, okr := check(n.r)
		h := max(hl, hr) + 1
		return h, okl && okr && n.m == h && hl-hr <= 1 && hr-hl <= 1
	}
	_, ok := check(u.root)
	return !ok || u.corrupt()
}
