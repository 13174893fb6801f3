package list

import "golang.org/x/exp/constraints"

// Iterator walks a ListArray from front to back.
// prev is the node before the one returned by the last Next, it is nil before the first Next
// and after Remove, which makes Remove legal only once per Next.
// Iterator is invalid once its array has been modified by anything but Iterator.Remove
type Iterator[T constraints.Ordered] struct {
	arr     *ListArray[T]
	current *node[T]
	prev    *node[T]
}

var _ Cursor[int] = (*Iterator[int])(nil)

// HasNext returns whether Next would return an element
func (iter *Iterator[T]) HasNext() bool {
	return iter.current.next != nil
}

// Next moves to the next element and returns it
func (iter *Iterator[T]) Next() (T, error) {
	if !iter.HasNext() {
		var zero T
		return zero, ErrNoSuchElement
	}
	iter.prev = iter.current
	iter.current = iter.current.next
	return iter.current.val, nil
}

// Remove deletes the element returned by the last Next from the array
func (iter *Iterator[T]) Remove() error {
	if iter.prev == nil {
		return ErrIllegalCursorState
	}
	unlinkAfter(iter.prev)
	// step back so that Next continues with the successor of the removed node
	iter.current = iter.prev
	iter.prev = nil
	iter.arr.size--
	return nil
}
