package list

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
	"golang.org/x/exp/constraints"
)

// ListArray is a dynamically resizable array stored as a singly linked chain of nodes.
// head is a sentinel which never holds a value, index i denotes the (i+1)-th node after head.
// ListArray is not concurrent safe
type ListArray[T constraints.Ordered] struct {
	head         node[T]
	size         int
	defaultValue T
}

var _ containers.Container = (*ListArray[int])(nil)

// Make creates an array of the given size filled with the zero value of T
func Make[T constraints.Ordered](size int) (*ListArray[T], error) {
	var zero T
	return MakeWithDefault(size, zero)
}

// MakeWithDefault creates an array of the given size filled with defaultValue,
// defaultValue is also used to fill new slots when the array grows
func MakeWithDefault[T constraints.Ordered](size int, defaultValue T) (*ListArray[T], error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	arr := &ListArray[T]{
		defaultValue: defaultValue,
	}
	for i := 0; i < size; i++ {
		insertAfter(&arr.head, defaultValue)
	}
	arr.size = size
	return arr, nil
}

// MakeCopy creates a deep copy of other, no node is shared between them
func MakeCopy[T constraints.Ordered](other *ListArray[T]) *ListArray[T] {
	arr := &ListArray[T]{
		defaultValue: other.defaultValue,
	}
	tail := &arr.head
	other.ForEach(func(i int, v T) bool {
		tail = insertAfter(tail, v)
		return true
	})
	arr.size = other.size
	return arr
}

// Copy returns a deep copy of arr
func (arr *ListArray[T]) Copy() *ListArray[T] {
	return MakeCopy(arr)
}

// Size returns the number of elements in array
func (arr *ListArray[T]) Size() int {
	return arr.size
}

// Default returns the value used to fill new slots
func (arr *ListArray[T]) Default() T {
	return arr.defaultValue
}

// Empty returns whether the array has no element
func (arr *ListArray[T]) Empty() bool {
	return arr.size == 0
}

func (arr *ListArray[T]) checkIndex(index int) error {
	if index < 0 || index >= arr.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, arr.size)
	}
	return nil
}

// seek returns the node at index, index must be checked by caller
func (arr *ListArray[T]) seek(index int) *node[T] {
	n := &arr.head
	for i := 0; i <= index; i++ {
		n = n.next
	}
	return n
}

// Resize truncates or grows the array to size elements.
// New slots hold the default value, the first min(size, Size()) elements are kept unchanged.
func (arr *ListArray[T]) Resize(size int) error {
	if size < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if size < arr.size {
		last := &arr.head
		if size > 0 {
			last = arr.seek(size - 1)
		}
		// dropped suffix is released as a whole
		last.next = nil
	} else if size > arr.size {
		last := &arr.head
		if arr.size > 0 {
			last = arr.seek(arr.size - 1)
		}
		for i := arr.size; i < size; i++ {
			last = insertAfter(last, arr.defaultValue)
		}
	}
	arr.size = size
	return nil
}

// Clear removes all elements
func (arr *ListArray[T]) Clear() {
	_ = arr.Resize(0)
}

// Get returns value at the given index
func (arr *ListArray[T]) Get(index int) (T, error) {
	if err := arr.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return arr.seek(index).val, nil
}

// Set updates value at the given index
func (arr *ListArray[T]) Set(index int, val T) error {
	if err := arr.checkIndex(index); err != nil {
		return err
	}
	arr.seek(index).val = val
	return nil
}

// Remove removes value at the given index and returns it, subsequent elements shift left by one
func (arr *ListArray[T]) Remove(index int) (T, error) {
	var val T
	if err := arr.checkIndex(index); err != nil {
		return val, err
	}
	iter := arr.Iterator()
	for i := 0; i <= index; i++ {
		// index has been checked, Next never fails here
		val, _ = iter.Next()
	}
	if err := iter.Remove(); err != nil {
		return val, err
	}
	return val, nil
}

// CompareTo compares arrays in lexicographic order.
// It returns the first non-zero comparison (-1 or 1) of elements at the same index,
// or Size() - other.Size() if the common prefix is equal
func (arr *ListArray[T]) CompareTo(other *ListArray[T]) int {
	lhs := arr.head.next
	rhs := other.head.next
	for lhs != nil && rhs != nil {
		if lhs.val < rhs.val {
			return -1
		}
		if lhs.val > rhs.val {
			return 1
		}
		lhs = lhs.next
		rhs = rhs.next
	}
	return arr.size - other.size
}

// Equal returns whether both arrays hold the same values in the same order
func (arr *ListArray[T]) Equal(other *ListArray[T]) bool {
	return arr.CompareTo(other) == 0
}

// ForEach visits each element in the array
// if the consumer returns false, the loop will be break
func (arr *ListArray[T]) ForEach(consumer Consumer[T]) {
	i := 0
	for n := arr.head.next; n != nil; n = n.next {
		if !consumer(i, n.val) {
			break
		}
		i++
	}
}

// Slice returns all values in order
func (arr *ListArray[T]) Slice() []T {
	slice := make([]T, 0, arr.size)
	arr.ForEach(func(i int, v T) bool {
		slice = append(slice, v)
		return true
	})
	return slice
}

// Values returns all values in order, as required by containers.Container
func (arr *ListArray[T]) Values() []interface{} {
	values := make([]interface{}, 0, arr.size)
	arr.ForEach(func(i int, v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

func (arr *ListArray[T]) String() string {
	var sb strings.Builder
	sb.WriteString("ListArray[")
	arr.ForEach(func(i int, v T) bool {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%v", v))
		return true
	})
	sb.WriteString("]")
	return sb.String()
}

// Iterator returns a cursor positioned before the first element
func (arr *ListArray[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		arr:     arr,
		current: &arr.head,
	}
}
