package list

// node is a cell of the chain. The sentinel head of a ListArray is a node whose val is never read.
type node[T any] struct {
	val  T
	next *node[T]
}

// insertAfter links a new node holding val right behind prev and returns it
func insertAfter[T any](prev *node[T], val T) *node[T] {
	n := &node[T]{
		val:  val,
		next: prev.next,
	}
	prev.next = n
	return n
}

// unlinkAfter splices prev.next out of the chain and returns it, prev.next must not be nil
func unlinkAfter[T any](prev *node[T]) *node[T] {
	n := prev.next
	prev.next = n.next
	n.next = nil
	return n
}
