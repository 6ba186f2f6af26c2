package Trees

import (
	"cmp"

	"github.com/g-m-twostay/datality"
	"github.com/sirupsen/logrus"
)

// Color of a RBTree node.
type Color bool

const (
	Black Color = false
	Red   Color = true
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// RBTree is a red-black tree with no repeated values: the root is black, a red
// node has no red child, and every path from a node down to its absent
// children passes the same number of black nodes. The color of each node is
// its Meta. The depth D is less than 2*log2(n+1).
// The zero value isn't usable, create it with NewRBTree.
type RBTree[T cmp.Ordered] struct {
	base[T, Color]
}

// NewRBTree returns a RBTree holding vs, inserted one by one in the given order.
func NewRBTree[T cmp.Ordered](vs ...T) *RBTree[T] {
	u := &RBTree[T]{base[T, Color]{sh: plain[T, Color]{}}}
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

func isRed[T cmp.Ordered](n *Node[T, Color]) bool {
	return n != nil && n.m == Red
}

// link returns the slot of the left child of n if dir is 0, the right one otherwise.
func link[T cmp.Ordered, M any](n *Node[T, M], dir int) **Node[T, M] {
	if dir == 0 {
		return &n.l
	}
	return &n.r
}

func rbLeaf[T cmp.Ordered](v T) *Node[T, Color] {
	return &Node[T, Color]{v: v, m: Red}
}

// repair a red child of *slot that has a red child of its own. *slot is the
// grandparent of the conflict and its other child the uncle: a red uncle
// pushes the red up by recoloring, a black one is fixed by rotations.
// Time: O(1)
func repair[T cmp.Ordered](slot **Node[T, Color]) {
	g := *slot
	var p, uncle *Node[T, Color]
	var left bool
	if isRed(g.l) && (isRed(g.l.l) || isRed(g.l.r)) {
		p, uncle, left = g.l, g.r, true
	} else if isRed(g.r) && (isRed(g.r.l) || isRed(g.r.r)) {
		p, uncle = g.r, g.l
	} else {
		return
	}
	if isRed(uncle) {
		if tracing() {
			Log.WithFields(logrus.Fields{"op": "repair", "node": g.v}).Debug("recoloring")
		}
		p.m, uncle.m, g.m = Black, Black, Red
		return
	}
	if tracing() {
		Log.WithFields(logrus.Fields{"op": "repair", "node": g.v, "double": isRed(p.r) && left || isRed(p.l) && !left}).Debug("rotating")
	}
	if left {
		if isRed(p.r) {
			rotateLeft(&g.l)
		}
		rotateRight(slot)
	} else {
		if isRed(p.l) {
			rotateRight(&g.r)
		}
		rotateLeft(slot)
	}
	(*slot).m, g.m = Black, Red
}

// Insert [Tree.Insert]. Recursive.
// The new leaf is red, conflicts are repaired at the grandparent while
// unwinding, and the root is painted black at last.
// Time: O(D)
func (u *RBTree[T]) Insert(v T) bool {
	inserted := u.add(v, rbLeaf[T], func(slot **Node[T, Color], _ bool) {
		repair(slot)
	})
	if inserted {
		u.root.m = Black
	}
	return inserted
}

// rbSingle rotates *slot towards dir, the child on the other side goes up
// black and *slot comes down red.
func rbSingle[T cmp.Ordered](slot **Node[T, Color], dir int) {
	if dir == 0 {
		rotateLeft(slot)
	} else {
		rotateRight(slot)
	}
	(*slot).m, (*link(*slot, dir)).m = Black, Red
}

// rbDouble is two rbSingle, first on the child opposite to dir.
func rbDouble[T cmp.Ordered](slot **Node[T, Color], dir int) {
	rbSingle(link(*slot, 1-dir), 1-dir)
	rbSingle(slot, dir)
}

// remove v from the subtree at slot. done turns true once the subtree lost no
// black height, or when v is missing, in which case found stays false.
// A node with two children takes the value of its in-order predecessor, which
// is removed instead.
func (u *RBTree[T]) remove(slot **Node[T, Color], v T, done, found *bool) {
	cur := *slot
	if cur == nil {
		*done = true
		return
	}
	if v == cur.v {
		*found = true
		if cur.l == nil || cur.r == nil {
			save := cur.l
			if save == nil {
				save = cur.r
			}
			if cur.m == Red {
				*done = true
			} else if isRed(save) {
				save.m = Black
				*done = true
			}
			*slot = save
			return
		}
		heir := cur.l
		for heir.r != nil {
			heir = heir.r
		}
		cur.v = heir.v
		v = heir.v
	}
	dir := 0
	if cur.v < v {
		dir = 1
	}
	u.remove(link(cur, dir), v, done, found)
	if !*done {
		u.fix(slot, dir, done)
	}
}

// fix the subtree at slot whose dir side is one black node short.
// Time: O(1)
func (u *RBTree[T]) fix(slot **Node[T, Color], dir int, done *bool) {
	p := *slot
	s := *link(p, 1-dir)
	// A red sibling is rotated up, p becomes red with a black sibling.
	if isRed(s) {
		rbSingle(slot, dir)
		s = *link(p, 1-dir)
	}
	if s == nil {
		return
	}
	// pSlot is where p hangs now, below the former sibling when it was red.
	pSlot := slot
	if *slot != p {
		pSlot = link(*slot, dir)
	}
	if !isRed(s.l) && !isRed(s.r) {
		if p.m == Red {
			*done = true
		}
		p.m, s.m = Black, Red
		return
	}
	if tracing() {
		Log.WithFields(logrus.Fields{"op": "fix", "node": p.v, "double": !isRed(*link(s, 1-dir))}).Debug("rotating")
	}
	save := p.m
	if isRed(*link(s, 1-dir)) {
		rbSingle(pSlot, dir)
	} else {
		rbDouble(pSlot, dir)
	}
	top := *pSlot
	top.m, top.l.m, top.r.m = save, Black, Black
	*done = true
}

// Delete [Tree.Delete]. Recursive.
// Removing a black node leaves its side one black short, which is fixed from
// the sibling while unwinding: a red sibling is rotated up first, a black one
// with black children is painted red and the shortage moves up, otherwise one
// or two rotations end it.
// Time: O(D)
func (u *RBTree[T]) Delete(v T) error {
	var done, found bool
	if !invalid(v) {
		u.remove(&u.root, v, &done, &found)
	}
	if !found {
		return datality.NotFoundError[T]{Value: v}
	}
	if u.root != nil {
		u.root.m = Black
	}
	u.sz--
	return nil
}

// Corrupt [Tree.Corrupt]
// Also checks the root color, red-red edges and black heights.
func (u *RBTree[T]) Corrupt() bool {
	var check func(*Node[T, Color]) (int, bool)
	check = func(n *Node[T, Color]) (int, bool) {
		if n == nil {
			return 1, true
		}
		if n.m == Red && (isRed(n.l) || isRed(n.r)) {
			return 0, false
		}
		bl, okl := check(n.l)
		br, okr := check(n.r)
		if !okl || !okr || bl != br {
			return 0, false
		}
		if n.m == Black {
			bl++
		}
		return bl, true
	}
	_, ok := check(u.root)
	return !ok || isRed(u.root) || u.corrupt()
}
