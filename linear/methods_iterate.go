// SPDX-License-Identifier: MIT

package linear

import (
	"fmt"
	"iter"
	"strings"
)

// ForEach calls fn once per value, head to tail, and returns the receiver.
func (l *Linear[T]) ForEach(fn func(T)) *Linear[T] {
	for n := l.root; n != nil; n = n.Next {
		fn(n.Value)
	}

	return l
}

// All returns an iterator over (index, value) pairs, head to tail.
func (l *Linear[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.root; n != nil; n = n.Next {
			if !yield(i, n.Value) {
				return
			}
			i++
		}
	}
}

// Values returns an iterator over the values, head to tail.
func (l *Linear[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.root; n != nil; n = n.Next {
			if !yield(n.Value) {
				return
			}
		}
	}
}

// ToSlice returns the values head to tail in a freshly allocated slice.
// An empty list yields an empty, non-nil slice.
func (l *Linear[T]) ToSlice() []T {
	out := make([]T, 0, l.length)
	for n := l.root; n != nil; n = n.Next {
		out = append(out, n.Value)
	}

	return out
}

// Join formats every value with fmt.Sprint and concatenates them with sep
// between adjacent values. An empty list yields "".
func (l *Linear[T]) Join(sep string) string {
	var b strings.Builder
	for n := l.root; n != nil; n = n.Next {
		if n != l.root {
			b.WriteString(sep)
		}
		b.WriteString(fmt.Sprint(n.Value))
	}

	return b.String()
}

// String joins the values with the configured separator (DefaultSeparator
// unless set by WithSeparator).
func (l *Linear[T]) String() string {
	return l.Join(l.opts.Separator)
}
