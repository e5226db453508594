package linear

// NewNode returns a detached node holding value and linked to next.
// Pass nil for a terminal node.
func NewNode[T any](value T, next *Node[T]) *Node[T] {
	return &Node[T]{Value: value, Next: next}
}

// EqualNodes reports whether a and b hold equal values along the entire
// forward chain. Two nil nodes are equal; a nil and a non-nil node are not.
//
// Complexity: O(min(len(a), len(b))).
func EqualNodes[T comparable](a, b *Node[T]) bool {
	for a != nil && b != nil {
		if a.Value != b.Value {
			return false
		}
		a, b = a.Next, b.Next
	}

	return a == nil && b == nil
}
