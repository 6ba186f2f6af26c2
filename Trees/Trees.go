package Trees

import "cmp"

// Tree is an ordered set stored as a binary search tree of Nodes, M being the
// balancing data of the implementation. Values are unique: inserting a value
// already present changes nothing. NaN is never stored nor found.
// Lookups that fail return an error matching datality.ErrNotFound, which is
// also the case for any lookup on an empty tree.
// Methods implemented recursively are noted, otherwise they are iterative.
type Tree[T cmp.Ordered, M any] interface {
	//Insert v to the Tree. Returning true if v wasn't in it.
	Insert(v T) bool
	//Delete v from the Tree.
	Delete(v T) error
	//Search returns the node holding v.
	//Exact behavior depend on implementation, a Splay moves it to the root.
	Search(v T) (*Node[T, M], error)
	//Successor returns the node holding the smallest value greater than v.
	//v itself must be in the tree.
	Successor(v T) (*Node[T, M], error)
	//Predecessor returns the node holding the greatest value less than v.
	//v itself must be in the tree.
	Predecessor(v T) (*Node[T, M], error)
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Has element v. Unlike Search it never restructures the tree.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Empty is Size()==0.
	Empty() bool
	//Root of the tree, nil if empty.
	Root() *Node[T, M]
	//InOrder returns A closure function f acting like an iterator. f
	//gives nodes in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. The tree must not be modified during the iteration.
	InOrder() func() (T, bool)
	//Values in ascending order.
	Values() []T
	//String renders the tree for debugging. It isn't a stable format.
	String() string
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
}
