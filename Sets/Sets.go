package Sets

// Set of unique elements.
type Set[E any] interface {
	// Put e into the Set, returning true if it wasn't in it.
	Put(e E) bool
	Has(e E) bool
	// Remove e from the Set, returning true if it was in it.
	Remove(e E) bool
	Size() uint
	// Range calls f on every element, stopping once f returns false. The
	// order is defined by the implementation.
	Range(f func(E) bool)
}
