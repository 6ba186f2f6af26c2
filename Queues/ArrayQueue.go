package Queues

import "fmt"

// ArrayQueue is a Deque stored in a circular array, which grows by half when
// full and never shrinks unless Shrink is called.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

// NewArrayQueue returns an ArrayQueue with room for initCap items, holding vs
// from front to back.
func NewArrayQueue[T any](initCap uint, vs ...T) *ArrayQueue[T] {
	u := &ArrayQueue[T]{content: make([]T, max(initCap, uint(len(vs))))}
	for _, v := range vs {
		u.PushBack(v)
	}
	return u
}

func (u *ArrayQueue[T]) Empty() bool {
	return u.sz == 0
}

func (u *ArrayQueue[T]) Size() uint {
	return u.sz
}

// Cap is the number of items u holds before growing.
func (u *ArrayQueue[T]) Cap() uint {
	return uint(len(u.content))
}

// resize moves the items to the front of a new array of newLen>=sz.
func (u *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.head < u.tail || u.sz == 0 {
		copy(nc, u.content[u.head:u.tail])
	} else {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:u.tail])
	}
	u.content, u.head, u.tail = nc, 0, u.sz%newLen
}

func (u *ArrayQueue[T]) grow() {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz*3/2 + 1)
	}
}

// wrap i into the array, i being less than twice its length.
func (u *ArrayQueue[T]) wrap(i uint) uint {
	if n := uint(len(u.content)); i >= n {
		return i - n
	}
	return i
}

// Shrink the array to fit the items.
func (u *ArrayQueue[T]) Shrink() {
	u.resize(u.sz | 1)
}

// Clear removes all items, keeping the capacity.
func (u *ArrayQueue[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *ArrayQueue[T]) PushBack(item T) {
	u.grow()
	u.content[u.tail] = item
	u.tail = u.wrap(u.tail + 1)
	u.sz++
}

func (u *ArrayQueue[T]) PushFront(item T) {
	u.grow()
	u.head = u.wrap(u.head + uint(len(u.content)) - 1)
	u.content[u.head] = item
	u.sz++
}

func (u *ArrayQueue[T]) PopFront() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = u.wrap(u.head + 1)
	u.sz--
	return item, nil
}

func (u *ArrayQueue[T]) PopBack() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	u.tail = u.wrap(u.tail + uint(len(u.content)) - 1)
	item = u.content[u.tail]
	u.content[u.tail] = *new(T)
	u.sz--
	return item, nil
}

func (u *ArrayQueue[T]) PeekFront() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	return u.content[u.head], nil
}

func (u *ArrayQueue[T]) PeekBack() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	return u.content[u.wrap(u.tail+uint(len(u.content))-1)], nil
}

func (u *ArrayQueue[T]) Push(item T) {
	u.PushBack(item)
}

func (u *ArrayQueue[T]) Pop() (T, error) {
	return u.PopFront()
}

func (u *ArrayQueue[T]) Peek() (T, error) {
	return u.PeekFront()
}

// At [Deque.At]
// Time: O(1)
func (u *ArrayQueue[T]) At(i int) (item T, e error) {
	j := i
	if j < 0 {
		j += int(u.sz)
	}
	if j < 0 || j >= int(u.sz) {
		return item, &OutOfRangeError{i, u.sz}
	}
	return u.content[u.wrap(u.head+uint(j))], nil
}

// Values from front to back.
func (u *ArrayQueue[T]) Values() []T {
	vs := make([]T, 0, u.sz)
	for i := uint(0); i < u.sz; i++ {
		vs = append(vs, u.content[u.wrap(u.head+i)])
	}
	return vs
}

func (u *ArrayQueue[T]) String() string {
	return fmt.Sprint(u.Values())
}
