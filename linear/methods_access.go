// SPDX-License-Identifier: MIT

package linear

// Get returns the value stored at index.
//
// Errors:
//   - ErrIndexOutOfRange if index < 0 or index >= Length().
func (l *Linear[T]) Get(index int) (T, error) {
	n, err := l.Node(index)
	if err != nil {
		var zero T
		return zero, err
	}

	return n.Value, nil
}

// Node returns the live node at index. Assigning to its Value updates the
// list in place; its Next link must not be modified by the caller.
//
// Errors:
//   - ErrIndexOutOfRange if index < 0 or index >= Length().
func (l *Linear[T]) Node(index int) (*Node[T], error) {
	if index < 0 || index >= l.length {
		return nil, outOfRange(index, l.length)
	}

	return l.nodeAt(index), nil
}

// Set overwrites the value at index without changing the chain.
//
// Errors:
//   - ErrIndexOutOfRange if index < 0 or index >= Length().
func (l *Linear[T]) Set(index int, value T) error {
	n, err := l.Node(index)
	if err != nil {
		return err
	}
	n.Value = value

	return nil
}

// Find returns the index of the first value for which pred reports true.
func (l *Linear[T]) Find(pred func(T) bool) (int, bool) {
	i := 0
	for n := l.root; n != nil; n = n.Next {
		if pred(n.Value) {
			return i, true
		}
		i++
	}

	return -1, false
}

// nodeAt walks index steps from the root. The caller guarantees
// 0 <= index < length; the last index is served from tail directly.
func (l *Linear[T]) nodeAt(index int) *Node[T] {
	if index == l.length-1 {
		return l.tail
	}

	n := l.root
	for i := 0; i < index; i++ {
		n = n.Next
	}

	return n
}
