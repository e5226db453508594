// SPDX-License-Identifier: MIT
//
// File: methods_derive.go
// Role: Operations that build a new, independent list from the receiver.
// Policy:
//   - The receiver is never modified.
//   - No node is shared between the receiver and the result.
//   - The result inherits the receiver's Options.

package linear

// Reverse returns a new list holding the receiver's values in opposite order.
//
// Implementation:
//   - Walk the receiver head→tail, prepending each value to the result,
//     which leaves the first value visited as the result's tail.
//
// Complexity:
//   - Time O(n), Space O(n).
func (l *Linear[T]) Reverse() *Linear[T] {
	out := &Linear[T]{opts: l.opts}
	for n := l.root; n != nil; n = n.Next {
		out.Prepend(n.Value)
	}

	return out
}

// Map returns a new list holding fn applied to every value, in order.
// For a result of a different element type use MapTo.
//
// Complexity:
//   - Time O(n) calls of fn, Space O(n).
func (l *Linear[T]) Map(fn func(T) T) *Linear[T] {
	return MapTo(l, fn)
}

// MapTo returns a new list holding fn applied to every value of l, in order.
// The result inherits l's Options.
func MapTo[T, U any](l *Linear[T], fn func(T) U) *Linear[U] {
	out := &Linear[U]{opts: l.opts}
	for n := l.root; n != nil; n = n.Next {
		out.Append(fn(n.Value))
	}

	return out
}

// Clone returns an independent copy of the list: same values, same order,
// same Options, fresh nodes.
func (l *Linear[T]) Clone() *Linear[T] {
	out := &Linear[T]{opts: l.opts}
	for n := l.root; n != nil; n = n.Next {
		out.Append(n.Value)
	}

	return out
}

// Equal reports whether a and b hold equal values in the same order.
// Options are not compared. Two nil lists are equal.
func Equal[T comparable](a, b *Linear[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.length != b.length {
		return false
	}

	return EqualNodes(a.root, b.root)
}
