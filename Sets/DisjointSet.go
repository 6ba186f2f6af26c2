package Sets

import "fmt"

// DisjointSet partitions elements into disjoint sets, each named by one of
// its elements, the representative. Every element points to a parent in its
// set; a representative is its own parent.
// The zero value isn't usable, create it with NewDisjointSet.
type DisjointSet[E comparable] struct {
	parents map[E]E
	sz      uint
}

// NewDisjointSet returns a DisjointSet with a singleton for each of es.
func NewDisjointSet[E comparable](es ...E) *DisjointSet[E] {
	u := &DisjointSet[E]{parents: make(map[E]E, len(es))}
	for _, e := range es {
		u.MakeSet(e)
	}
	return u
}

// MakeSet adds e as a singleton set, returning false if e was already known.
// Time: O(1)
func (u *DisjointSet[E]) MakeSet(e E) bool {
	if _, ok := u.parents[e]; ok {
		return false
	}
	u.parents[e] = e
	u.sz++
	return true
}

// Find returns the representative of e, pointing every element on the way
// directly to it. An unknown element is its own representative.
// Time: amortized O(log n)
func (u *DisjointSet[E]) Find(e E) E {
	r := e
	for p, ok := u.parents[r]; ok && p != r; p, ok = u.parents[r] {
		r = p
	}
	for e != r {
		p := u.parents[e]
		u.parents[e] = r
		e = p
	}
	return r
}

// Same reports whether a and b are in the same set.
func (u *DisjointSet[E]) Same(a, b E) bool {
	return u.Find(a) == u.Find(b)
}

// Union joins the sets of a and b, returning false if they were already one.
// Unknown elements are made into sets first. When a is its own
// representative it goes under the representative of b, otherwise the
// representative of b goes under that of a.
// Time: amortized O(log n)
func (u *DisjointSet[E]) Union(a, b E) bool {
	u.MakeSet(a)
	u.MakeSet(b)
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return false
	}
	if a == ra {
		u.parents[ra] = rb
	} else {
		u.parents[rb] = ra
	}
	u.sz--
	return true
}

// Size is the number of disjoint sets.
func (u *DisjointSet[E]) Size() uint {
	return u.sz
}

// Len is the number of elements in all sets.
func (u *DisjointSet[E]) Len() int {
	return len(u.parents)
}

// Sets returns every set keyed by its representative.
// Time: O(n)
func (u *DisjointSet[E]) Sets() map[E][]E {
	m := make(map[E][]E, u.sz)
	for e := range u.parents {
		r := u.Find(e)
		m[r] = append(m[r], e)
	}
	return m
}

// String prints the parent of every element.
func (u *DisjointSet[E]) String() string {
	return fmt.Sprint(u.parents)
}
