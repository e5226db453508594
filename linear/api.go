// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors and O(1) read-only getters.
// Policy:
//   - No traversal here; everything is answered from root/tail/length.

package linear

// New creates an empty list configured by opts.
//
// Implementation:
//   - Stage 1: Start from DefaultOptions().
//   - Stage 2: Apply opts left-to-right.
//
// Returns:
//   - *Linear[T]: empty list (Length()==0).
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func New[T any](opts ...Option) *Linear[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Linear[T]{opts: cfg}
}

// From creates a list holding values in the given order, with default options.
//
// Complexity:
//   - Time O(len(values)), Space O(len(values)).
func From[T any](values ...T) *Linear[T] {
	return New[T]().Append(values...)
}

// Length returns the number of nodes in the list.
func (l *Linear[T]) Length() int {
	return l.length
}

// IsEmpty reports whether the list holds no nodes.
func (l *Linear[T]) IsEmpty() bool {
	return l.length == 0
}

// Head returns the value of the first node.
// ok is false, and value the zero T, when the list is empty.
func (l *Linear[T]) Head() (value T, ok bool) {
	if l.root == nil {
		return value, false
	}

	return l.root.Value, true
}

// Last returns the value of the final node.
// ok is false, and value the zero T, when the list is empty.
func (l *Linear[T]) Last() (value T, ok bool) {
	if l.tail == nil {
		return value, false
	}

	return l.tail.Value, true
}

// Options returns a copy of the construction-time configuration.
func (l *Linear[T]) Options() Options {
	return l.opts
}
