package list

import "errors"

var (
	// ErrInvalidSize is returned when a negative size is requested
	ErrInvalidSize = errors.New("invalid array size")
	// ErrIndexOutOfRange is returned when an index is not within [0, size)
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNoSuchElement is returned by Iterator.Next after the last element
	ErrNoSuchElement = errors.New("no such element")
	// ErrIllegalCursorState is returned by Iterator.Remove without a preceding Next
	ErrIllegalCursorState = errors.New("illegal cursor state")
)
