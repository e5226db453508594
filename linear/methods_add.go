// SPDX-License-Identifier: MIT

package linear

// Append links values after the current last node, in call order.
// Returns the receiver for chaining.
//
// Complexity: O(len(values)).
func (l *Linear[T]) Append(values ...T) *Linear[T] {
	for _, v := range values {
		n := &Node[T]{Value: v}
		if l.tail == nil {
			l.root = n
			l.tail = n
		} else {
			l.tail.Next = n
			l.tail = n
		}
		l.length++
	}

	return l
}

// Prepend links each value in front of the current first node, left to
// right, so every argument becomes the new head in turn:
//
//	New[string]().Prepend("A", "B") // [B A]
//
// Returns the receiver for chaining.
//
// Complexity: O(len(values)).
func (l *Linear[T]) Prepend(values ...T) *Linear[T] {
	for _, v := range values {
		l.root = &Node[T]{Value: v, Next: l.root}
		if l.tail == nil {
			l.tail = l.root
		}
		l.length++
	}

	return l
}

// Insert places values at index, one after another, so that each value
// lands at index and pushes the previously inserted ones one step deeper.
// With a single value this is a plain positional insert; with several the
// stored order is the reverse of the argument order:
//
//	l := From("B", "A")
//	_ = l.Insert(1, "C", "D") // [B D C A]
//
// Index 0 inserts before the head, Length() after the last node.
//
// Errors:
//   - ErrIndexOutOfRange if index < 0 or index > Length(); the list is
//     left untouched.
//
// Complexity: O(index + len(values)).
func (l *Linear[T]) Insert(index int, values ...T) error {
	if index < 0 || index > l.length {
		return outOfRange(index, l.length)
	}
	if index == 0 {
		l.Prepend(values...)
		return nil
	}

	prev := l.nodeAt(index - 1)
	for _, v := range values {
		n := &Node[T]{Value: v, Next: prev.Next}
		prev.Next = n
		if n.Next == nil {
			// first value inserted at the end becomes the new tail
			l.tail = n
		}
		l.length++
	}

	return nil
}
