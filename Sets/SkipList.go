package Sets

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/g-m-twostay/datality"
	"golang.org/x/exp/constraints"
)

type skipNode[E constraints.Ordered] struct {
	v          E
	next, down *skipNode[E]
}

// SkipList is an ordered Set made of sorted linked lists stacked as levels.
// The bottom level holds every element, and each element of a level is also
// in the level above with probability p, so a search skips most of the
// bottom level by going right then down from the top.
// The expected depth D is log_{1/p}(n). NaN is never stored nor found.
// The zero value isn't usable, create it with NewSkipList.
type SkipList[E constraints.Ordered] struct {
	root, bottom *skipNode[E] // heads of the top and bottom levels.
	p            float64
	rg           *rand.Rand
	sz, height   uint
}

// NewSkipList returns a SkipList holding vs. Promotions happen with
// probability p, 0.5 if p isn't in (0,1), drawing from rg. A nil rg is
// replaced by one seeded from the global source.
func NewSkipList[E constraints.Ordered](rg *rand.Rand, p float64, vs ...E) *SkipList[E] {
	if rg == nil {
		rg = rand.New(rand.NewSource(rand.Int63()))
	}
	if !(p > 0 && p < 1) {
		p = 0.5
	}
	head := new(skipNode[E])
	u := &SkipList[E]{root: head, bottom: head, p: p, rg: rg, height: 1}
	for _, v := range vs {
		u.Insert(v)
	}
	return u
}

// floor returns the last node of the bottom level that is less than v, going
// right then down from the top. If path isn't nil, the last node visited on
// every level above the bottom is appended to it, top first.
func (u *SkipList[E]) floor(v E, path *[]*skipNode[E]) *skipNode[E] {
	n := u.root
	for {
		for n.next != nil && n.next.v < v {
			n = n.next
		}
		if n.down == nil {
			return n
		}
		if path != nil {
			*path = append(*path, n)
		}
		n = n.down
	}
}

// Insert v, returning true if it wasn't in the SkipList. The new element is
// promoted one level up while a coin flip succeeds, adding a level on top
// when it passes the highest one.
// Time: expected O(D)
func (u *SkipList[E]) Insert(v E) bool {
	if v != v {
		return false
	}
	path := make([]*skipNode[E], 0, u.height)
	n := u.floor(v, &path)
	if n.next != nil && n.next.v == v {
		return false
	}
	below := &skipNode[E]{v: v, next: n.next}
	n.next = below
	u.sz++
	for u.rg.Float64() < u.p {
		if len(path) > 0 {
			n, path = path[len(path)-1], path[:len(path)-1]
			n.next = &skipNode[E]{v: v, next: n.next, down: below}
			below = n.next
		} else {
			u.root = &skipNode[E]{next: &skipNode[E]{v: v, down: below}, down: u.root}
			u.height++
			below = u.root.next
		}
	}
	return true
}

// Delete v from every level, then drops the empty levels on top.
// Time: expected O(D)
func (u *SkipList[E]) Delete(v E) error {
	if v != v {
		return datality.NotFoundError[E]{Value: v}
	}
	found := false
	for n := u.root; n != nil; n = n.down {
		for n.next != nil && n.next.v < v {
			n = n.next
		}
		if n.next != nil && n.next.v == v {
			n.next = n.next.next
			found = true
		}
	}
	if !found {
		return datality.NotFoundError[E]{Value: v}
	}
	for u.root.next == nil && u.root.down != nil {
		u.root = u.root.down
		u.height--
	}
	u.sz--
	return nil
}

// Search returns the element equal to v.
// Time: expected O(D)
func (u *SkipList[E]) Search(v E) (E, error) {
	if v == v {
		if n := u.floor(v, nil).next; n != nil && n.v == v {
			return n.v, nil
		}
	}
	return *new(E), datality.NotFoundError[E]{Value: v}
}

// Successor returns the smallest element greater than v. v itself must be in
// the SkipList.
// Time: expected O(D)
func (u *SkipList[E]) Successor(v E) (E, error) {
	if v == v {
		if n := u.floor(v, nil).next; n != nil && n.v == v && n.next != nil {
			return n.next.v, nil
		}
	}
	return *new(E), datality.NotFoundError[E]{Value: v}
}

// Put [Set.Put]
func (u *SkipList[E]) Put(v E) bool {
	return u.Insert(v)
}

// Remove [Set.Remove]
func (u *SkipList[E]) Remove(v E) bool {
	return u.Delete(v) == nil
}

// Has [Set.Has]
func (u *SkipList[E]) Has(v E) bool {
	_, err := u.Search(v)
	return err == nil
}

// Range [Set.Range]
// Elements are given in ascending order.
func (u *SkipList[E]) Range(f func(E) bool) {
	for n := u.bottom.next; n != nil && f(n.v); n = n.next {
	}
}

func (u *SkipList[E]) Size() uint {
	return u.sz
}

func (u *SkipList[E]) Empty() bool {
	return u.sz == 0
}

// Height is the number of levels, at least 1.
func (u *SkipList[E]) Height() uint {
	return u.height
}

// Values in ascending order.
func (u *SkipList[E]) Values() []E {
	vs := make([]E, 0, u.sz)
	u.Range(func(v E) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// String prints every level from the top, numbered from 0.
func (u *SkipList[E]) String() string {
	var sb strings.Builder
	for lv, head := 0, u.root; head != nil; lv, head = lv+1, head.down {
		if lv > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d: ", lv)
		for n := head.next; n != nil; n = n.next {
			fmt.Fprintf(&sb, "(%v)->", n.v)
		}
	}
	return sb.String()
}

// corrupt reports whether a level isn't strictly ascending, isn't a subset
// of the level below, or the bottom level doesn't hold Size elements.
func (u *SkipList[E]) corrupt() bool {
	for head := u.root; head != nil; head = head.down {
		for n := head.next; n != nil; n = n.next {
			if n.next != nil && !(n.v < n.next.v) {
				return true
			}
			if n.down != nil && n.down.v != n.v {
				return true
			}
		}
	}
	return uint(len(u.Values())) != u.sz
}
