package Trees

import (
	"cmp"
	"fmt"

	"github.com/sirupsen/logrus"
)

// SBTree is a binary search tree with no repeated values. It maintains
// balance through rotations by checking the sizes of subtrees: no subtree is
// smaller than either child of its sibling. The size of each subtree is its
// Meta, which also answers rank queries in O(D).
// The worst case height of the tree is less than f(n)=1.44*log2(n+1.5)-1.33.
// Delete doesn't maintain, so D after a sequence of deletions is bounded by
// the largest size the tree had, until the next Insert.
// The zero value isn't usable, create it with NewSBTree or BuildSBTree.
type SBTree[T cmp.Ordered] struct {
	base[T, uint]
}

// NewSBTree returns a SBTree holding vs, inserted one by one in the given order.
func NewSBTree[T cmp.Ordered](vs ...T) *SBTree[T] {
	u := &SBTree[T]{base[T, uint]{sh: sbShape[T]{}}}
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// InvalidSliceError is returned by BuildSBTree when the values at At-1 and At
// aren't strictly ascending.
type InvalidSliceError[T cmp.Ordered] struct {
	At         int
	Prev, Next T
}

func (e InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice isn't strictly ascending at %d: %v, %v", e.At, e.Prev, e.Next)
}

// BuildSBTree builds a SBTree from sli recursively, which is faster than
// repeatedly calling Insert. sli must be sorted in ascending order without
// repeated values or NaN, otherwise an InvalidSliceError is returned.
// Time: O(n).
func BuildSBTree[T cmp.Ordered](sli []T) (*SBTree[T], error) {
	for i, v := range sli {
		if invalid(v) || (i > 0 && !(sli[i-1] < v)) {
			e := InvalidSliceError[T]{At: i, Next: v}
			if i > 0 {
				e.Prev = sli[i-1]
			}
			return nil, e
		}
	}
	var build func([]T) *Node[T, uint]
	build = func(s []T) *Node[T, uint] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		return &Node[T, uint]{v: s[mid], l: build(s[:mid]), r: build(s[mid+1:]), m: uint(len(s))}
	}
	u := NewSBTree[T]()
	u.root, u.sz = build(sli), uint(len(sli))
	return u, nil
}

// count of the subtree at n.
func count[T cmp.Ordered](n *Node[T, uint]) uint {
	if n == nil {
		return 0
	}
	return n.m
}

type sbShape[T cmp.Ordered] struct{}

func (sbShape[T]) pull(n *Node[T, uint]) {
	n.m = count(n.l) + count(n.r) + 1
}

// promoteLeft picks the larger child.
func (sbShape[T]) promoteLeft(n *Node[T, uint]) bool {
	return count(n.l) >= count(n.r)
}

func (s sbShape[T]) settle(slot **Node[T, uint]) {
	s.pull(*slot)
}

// maintain the subtree at slot to satisfy the SBTree properties after its
// rightBigger side grew. Rotations are applied at most on the grown side,
// then the changed subtrees are maintained again.
// Time: amortized O(1)
func (u *SBTree[T]) maintain(slot **Node[T, uint], rightBigger bool) {
	cur := *slot
	if cur == nil {
		return
	}
	if rc, lc := cur.r, cur.l; rightBigger {
		if rc == nil {
			return
		} else if count(rc.r) > count(lc) {
			u.rotateLeft(slot)
		} else if count(rc.l) > count(lc) {
			u.rotateRight(&cur.r)
			u.rotateLeft(slot)
		} else {
			return
		}
	} else {
		if lc == nil {
			return
		} else if count(lc.l) > count(rc) {
			u.rotateRight(slot)
		} else if count(lc.r) > count(rc) {
			u.rotateLeft(&cur.l)
			u.rotateRight(slot)
		} else {
			return
		}
	}
	top := *slot
	if tracing() {
		Log.WithFields(logrus.Fields{"op": "maintain", "node": cur.v, "top": top.v}).Debug("rotated")
	}
	u.maintain(&top.l, false)
	u.maintain(&top.r, true)
	u.maintain(slot, false)
	u.maintain(slot, true)
}

func sbLeaf[T cmp.Ordered](v T) *Node[T, uint] {
	return &Node[T, uint]{v: v, m: 1}
}

// Insert [Tree.Insert]. Recursive.
// Every ancestor of the new leaf counts it and is maintained on the side it grew.
// Time: O(D)
func (u *SBTree[T]) Insert(v T) bool {
	return u.add(v, sbLeaf[T], func(slot **Node[T, uint], right bool) {
		(*slot).m++
		u.maintain(slot, right)
	})
}

// Delete [Tree.Delete]. Recursive.
// The node holding v is rotated below its larger child until it becomes a
// leaf, then every ancestor recounts.
// Time: O(D)
func (u *SBTree[T]) Delete(v T) error {
	return u.delete(v)
}

// Kth returns the k-th smallest value, counting from 1.
// Returns (x,true) if 0<k<=Size(), otherwise (0,false).
// Time: O(D); Space: O(1)
func (u *SBTree[T]) Kth(k uint) (T, bool) {
	if k == 0 || k > u.sz {
		return *new(T), false
	}
	cur := u.root
	for {
		if l := count(cur.l); k <= l {
			cur = cur.l
		} else if k == l+1 {
			return cur.v, true
		} else {
			k -= l + 1
			cur = cur.r
		}
	}
}

// RankOf v, starting from 1, meaning v is the RankOf(v)-th smallest value.
// Returns 0 if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *SBTree[T]) RankOf(v T) uint {
	var ra uint
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v > cur.v {
			ra += count(cur.l) + 1
			cur = cur.r
		} else {
			return ra + count(cur.l) + 1
		}
	}
	return 0
}

// Corrupt [Tree.Corrupt]
// Also checks every stored size.
func (u *SBTree[T]) Corrupt() bool {
	var check func(*Node[T, uint]) (uint, bool)
	check = func(n *Node[T, uint]) (uint, bool) {
		if n == nil {
			return 0, true
		}
		l, okl := check(n.l)
		r, okr := check(n.r)
		return l + r + 1, okl && okr && n.m == l+r+1
	}
	_, ok := check(u.root)
	return !ok || u.corrupt()
}

// balanced reports whether every subtree is at least as large as both
// children of its sibling, which holds after any sequence of inserts.
func (u *SBTree[T]) balanced() bool {
	var check func(*Node[T, uint]) bool
	check = func(n *Node[T, uint]) bool {
		if n == nil {
			return true
		}
		if n.l != nil && (count(n.l.l) > count(n.r) || count(n.l.r) > count(n.r)) {
			return false
		}
		if n.r != nil && (count(n.r.l) > count(n.l) || count(n.r.r) > count(n.l)) {
			return false
		}
		return check(n.l) && check(n.r)
	}
	return check(u.root)
}
