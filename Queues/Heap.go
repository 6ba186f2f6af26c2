package Queues

import (
	"fmt"
	"slices"

	"golang.org/x/exp/constraints"
)

// Heap is a binary min-heap stored in a slice: the children of i are at 2i+1
// and 2i+2, and no child is less than its parent. As a Queue it gives values
// back in ascending order.
type Heap[T constraints.Ordered] struct {
	core []T
}

// NewHeap returns a Heap holding vs. It sifts down every parent from the last
// one instead of pushing the values one by one.
// Time: O(n)
func NewHeap[T constraints.Ordered](vs ...T) *Heap[T] {
	u := &Heap[T]{slices.Clone(vs)}
	for i := len(u.core)/2 - 1; i >= 0; i-- {
		u.down(i)
	}
	return u
}

func (u *Heap[T]) up(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !(u.core[i] < u.core[p]) {
			return
		}
		u.core[i], u.core[p] = u.core[p], u.core[i]
		i = p
	}
}

func (u *Heap[T]) down(i int) {
	for n := len(u.core); ; {
		c := 2*i + 1
		if c >= n {
			return
		}
		if c+1 < n && u.core[c+1] < u.core[c] {
			c++
		}
		if !(u.core[c] < u.core[i]) {
			return
		}
		u.core[i], u.core[c] = u.core[c], u.core[i]
		i = c
	}
}

// Push [Queue.Push]
// Time: O(log n)
func (u *Heap[T]) Push(item T) {
	u.core = append(u.core, item)
	u.up(len(u.core) - 1)
}

// Pop [Queue.Pop]
// The minimum is swapped with the last value, which then sifts down.
// Time: O(log n)
func (u *Heap[T]) Pop() (item T, e error) {
	if len(u.core) == 0 {
		return item, &EmptyQueueError{}
	}
	last := len(u.core) - 1
	u.core[0], u.core[last] = u.core[last], u.core[0]
	item = u.core[last]
	u.core = u.core[:last]
	u.down(0)
	return item, nil
}

// Peek [Queue.Peek]
// Time: O(1)
func (u *Heap[T]) Peek() (item T, e error) {
	if len(u.core) == 0 {
		return item, &EmptyQueueError{}
	}
	return u.core[0], nil
}

func (u *Heap[T]) Empty() bool {
	return len(u.core) == 0
}

func (u *Heap[T]) Size() uint {
	return uint(len(u.core))
}

// String prints the underlying slice, in heap order.
func (u *Heap[T]) String() string {
	return fmt.Sprint(u.core)
}
