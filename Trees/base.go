package Trees

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/g-m-twostay/datality"
)

// shape is what a variant plugs into the rotate-to-leaf deletion of base.
type shape[T cmp.Ordered, M any] interface {
	// pull recomputes the balancing data of n from its children.
	pull(n *Node[T, M])
	// promoteLeft chooses the child rotated above n while n sinks. n has at
	// least one child.
	promoteLeft(n *Node[T, M]) bool
	// settle restores the balance of the variant at *slot, given that both
	// subtrees of *slot satisfy it. *slot isn't nil.
	settle(slot **Node[T, M])
}

// plain is the shape of trees without balancing data.
type plain[T cmp.Ordered, M any] struct{}

func (plain[T, M]) pull(*Node[T, M]) {}

func (plain[T, M]) promoteLeft(n *Node[T, M]) bool {
	return n.l != nil
}

func (plain[T, M]) settle(**Node[T, M]) {}

// base holds everything the BST variants share: lookups, traversal and the
// rotate-to-leaf deletion. Parents are never stored; operations that need
// them recurse over child slots.
type base[T cmp.Ordered, M any] struct {
	root *Node[T, M]
	sz   uint
	sh   shape[T, M]
}

func (u *base[T, M]) rotateLeft(n **Node[T, M]) {
	rotateLeft(n)
	u.sh.pull((*n).l)
	u.sh.pull(*n)
}

func (u *base[T, M]) rotateRight(n **Node[T, M]) {
	rotateRight(n)
	u.sh.pull((*n).r)
	u.sh.pull(*n)
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *base[T, M]) Size() uint {
	return u.sz
}

// Empty reports whether Size is 0.
func (u *base[T, M]) Empty() bool {
	return u.sz == 0
}

// Root of the tree, nil when empty.
func (u *base[T, M]) Root() *Node[T, M] {
	return u.root
}

// Search [Tree.Search]
// Time: O(D); Space: O(1)
func (u *base[T, M]) Search(v T) (*Node[T, M], error) {
	if !invalid(v) {
		for cur := u.root; cur != nil; {
			if v < cur.v {
				cur = cur.l
			} else if v > cur.v {
				cur = cur.r
			} else {
				return cur, nil
			}
		}
	}
	return nil, datality.NotFoundError[T]{Value: v}
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *base[T, M]) Has(v T) bool {
	_, err := u.Search(v)
	return err == nil
}

// Successor [Tree.Successor]
// The search for v remembers the last node where it went left, that node is
// the successor when v has no right subtree.
// Time: O(D); Space: O(1)
func (u *base[T, M]) Successor(v T) (*Node[T, M], error) {
	if invalid(v) {
		return nil, datality.NotFoundError[T]{Value: v}
	}
	var next *Node[T, M]
	cur := u.root
	for cur != nil && cur.v != v {
		if v < cur.v {
			next = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if cur == nil {
		return nil, datality.NotFoundError[T]{Value: v}
	}
	if cur.r != nil {
		for cur = cur.r; cur.l != nil; cur = cur.l {
		}
		return cur, nil
	}
	if next == nil {
		return nil, datality.NotFoundError[T]{Value: v}
	}
	return next, nil
}

// Predecessor [Tree.Predecessor]
// Mirror of Successor.
// Time: O(D); Space: O(1)
func (u *base[T, M]) Predecessor(v T) (*Node[T, M], error) {
	if invalid(v) {
		return nil, datality.NotFoundError[T]{Value: v}
	}
	var prev *Node[T, M]
	cur := u.root
	for cur != nil && cur.v != v {
		if v > cur.v {
			prev = cur
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	if cur == nil {
		return nil, datality.NotFoundError[T]{Value: v}
	}
	if cur.l != nil {
		for cur = cur.l; cur.r != nil; cur = cur.r {
		}
		return cur, nil
	}
	if prev == nil {
		return nil, datality.NotFoundError[T]{Value: v}
	}
	return prev, nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *base[T, M]) Minimum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.l != nil {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *base[T, M]) Maximum() (T, bool) {
	cur := u.root
	if cur == nil {
		return *new(T), false
	}
	for cur.r != nil {
		cur = cur.r
	}
	return cur.v, true
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(D)
func (u *base[T, M]) InOrder() func() (T, bool) {
	var st []*Node[T, M]
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	return func() (v T, has bool) {
		if len(st) == 0 {
			return
		}
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		for n := cur.r; n != nil; n = n.l {
			st = append(st, n)
		}
		return cur.v, true
	}
}

// Values in ascending order.
func (u *base[T, M]) Values() []T {
	vs := make([]T, 0, u.sz)
	for next := u.InOrder(); ; {
		v, has := next()
		if !has {
			return vs
		}
		vs = append(vs, v)
	}
}

// String draws the tree sideways: a reverse in-order walk, one line per node,
// indented by one tab per level. The root is at column 0 and larger values
// come first.
func (u *base[T, M]) String() string {
	var sb strings.Builder
	u.draw(&sb, u.root, 0)
	return strings.TrimSuffix(sb.String(), "\n")
}

func (u *base[T, M]) draw(sb *strings.Builder, n *Node[T, M], d int) {
	if n == nil {
		return
	}
	u.draw(sb, n.r, d+1)
	fmt.Fprintf(sb, "%s-->(%v)\n", strings.Repeat("\t", d), n.v)
	u.draw(sb, n.l, d+1)
}

// insert v as a new leaf below *slot, or report false when it is already
// present. after is called on every slot of the search path, bottom-up, once
// the leaf is linked.
func (u *base[T, M]) insert(slot **Node[T, M], v T, leaf func(T) *Node[T, M], after func(**Node[T, M], bool)) bool {
	cur := *slot
	if cur == nil {
		*slot = leaf(v)
		return true
	}
	var inserted bool
	if v < cur.v {
		inserted = u.insert(&cur.l, v, leaf, after)
	} else if v > cur.v {
		inserted = u.insert(&cur.r, v, leaf, after)
	} else {
		return false
	}
	if inserted {
		after(slot, v > cur.v)
	}
	return inserted
}

// add is Insert for variants built on insert.
func (u *base[T, M]) add(v T, leaf func(T) *Node[T, M], after func(**Node[T, M], bool)) bool {
	if invalid(v) || !u.insert(&u.root, v, leaf, after) {
		return false
	}
	u.sz++
	return true
}

// remove v from the subtree at slot. The node holding v is sunk to a leaf and
// unlinked; every slot above it is settled on the way back up.
func (u *base[T, M]) remove(slot **Node[T, M], v T) bool {
	cur := *slot
	if cur == nil {
		return false
	}
	if v < cur.v {
		if !u.remove(&cur.l, v) {
			return false
		}
	} else if v > cur.v {
		if !u.remove(&cur.r, v) {
			return false
		}
	} else {
		u.sink(slot)
		return true
	}
	u.sh.settle(slot)
	return true
}

// sink rotates the node at *slot below its chosen child until it has no
// children, then unlinks it.
func (u *base[T, M]) sink(slot **Node[T, M]) {
	cur := *slot
	if cur.l == nil && cur.r == nil {
		*slot = nil
		return
	}
	if u.sh.promoteLeft(cur) {
		u.rotateRight(slot)
		u.sink(&(*slot).r)
	} else {
		u.rotateLeft(slot)
		u.sink(&(*slot).l)
	}
	u.sh.settle(slot)
}

// delete is Delete for variants using rotate-to-leaf.
func (u *base[T, M]) delete(v T) error {
	if invalid(v) || !u.remove(&u.root, v) {
		return datality.NotFoundError[T]{Value: v}
	}
	u.sz--
	return nil
}

// corrupt reports whether in-order isn't strictly increasing or the node
// count differs from Size.
func (u *base[T, M]) corrupt() bool {
	var n uint
	next := u.InOrder()
	prev, has := next()
	if has {
		n++
	}
	for v, has := next(); has; v, has = next() {
		if !(prev < v) {
			return true
		}
		prev = v
		n++
	}
	return n != u.sz
}
