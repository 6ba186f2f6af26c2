package Queues

import "fmt"

// Queue is a collection that gives its values back one at a time, in an order
// defined by the implementation: insertion order for ArrayQueue, ascending
// for Heap.
type Queue[T any] interface {
	// Push item to the Queue.
	Push(item T)
	// Pop removes and returns the next item, or an *EmptyQueueError.
	Pop() (T, error)
	// Peek returns the next item without removing it, or an *EmptyQueueError.
	Peek() (T, error)
	Empty() bool
	Size() uint
}

// Deque is a Queue that can be pushed to and popped from both ends. As a
// Queue it is FIFO: Push is PushBack and Pop is PopFront.
type Deque[T any] interface {
	Queue[T]
	PushFront(item T)
	PushBack(item T)
	PopFront() (T, error)
	PopBack() (T, error)
	PeekFront() (T, error)
	PeekBack() (T, error)
	// At returns the i-th item from the front, or from the back when i is negative.
	At(i int) (T, error)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "queue is empty"
}

// OutOfRangeError is returned when an index isn't in [-Size, Size).
type OutOfRangeError struct {
	Index int
	Size  uint
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for size %d", e.Index, e.Size)
}
