// SPDX-License-Identifier: MIT

package linear

// Remove unlinks the node at index, joining its predecessor to its successor.
//
// Errors:
//   - ErrEmptyList if the list has no nodes (checked first).
//   - ErrIndexOutOfRange if index < 0 or index >= Length().
//
// Complexity: O(index).
func (l *Linear[T]) Remove(index int) error {
	if l.length == 0 {
		return ErrEmptyList
	}
	if index < 0 || index >= l.length {
		return outOfRange(index, l.length)
	}

	var removed *Node[T]
	if index == 0 {
		removed = l.root
		l.root = removed.Next
		if l.root == nil {
			l.tail = nil
		}
	} else {
		prev := l.nodeAt(index - 1)
		removed = prev.Next
		prev.Next = removed.Next
		if removed == l.tail {
			l.tail = prev
		}
	}
	removed.Next = nil // detach from the chain
	l.length--

	return nil
}

// RemoveHead unlinks the first node. Equivalent to Remove(0).
//
// Errors:
//   - ErrEmptyList if the list has no nodes.
func (l *Linear[T]) RemoveHead() error {
	return l.Remove(0)
}

// Clear drops every node and returns the now-empty receiver for chaining.
// Options are preserved.
func (l *Linear[T]) Clear() *Linear[T] {
	l.root = nil
	l.tail = nil
	l.length = 0

	return l
}
