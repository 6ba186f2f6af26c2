package datality

import "fmt"

// Error is a string error usable as a constant.
type Error string

func (e Error) Error() string { return string(e) }

// ErrNotFound is matched by every lookup failure in this module.
const ErrNotFound Error = "not found"

// NotFoundError reports the Value a search, successor or delete could not find.
// errors.Is(err, ErrNotFound) holds for it.
type NotFoundError[T any] struct {
	Value T
}

func (e NotFoundError[T]) Error() string {
	return fmt.Sprintf("%v %s", e.Value, ErrNotFound)
}

func (e NotFoundError[T]) Unwrap() error {
	return ErrNotFound
}
