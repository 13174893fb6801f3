package list

// Consumer traverses array.
// It receives index and value as params, returns true to continue traversal, while returns false to break
type Consumer[T any] func(i int, v T) bool

// Cursor is a forward-only traversal which may delete the element it returned last
type Cursor[T any] interface {
	HasNext() bool
	Next() (T, error)
	Remove() error
}
