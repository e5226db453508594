package linear_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhi543/singlie/linear"
)

// TestErrors_OutOfRange checks every indexed operation rejects bad indices
// with ErrIndexOutOfRange and leaves the list untouched.
func TestErrors_OutOfRange(t *testing.T) {
	want := []string{ValueA, ValueB}

	ops := map[string]func(l *linear.Linear[string]) error{
		"Get(-1)": func(l *linear.Linear[string]) error { _, err := l.Get(-1); return err },
		"Get(2)":  func(l *linear.Linear[string]) error { _, err := l.Get(2); return err },
		"Node(2)": func(l *linear.Linear[string]) error { _, err := l.Node(2); return err },
		"Set(2)":  func(l *linear.Linear[string]) error { return l.Set(2, ValueX) },
		"Set(-1)": func(l *linear.Linear[string]) error { return l.Set(-1, ValueX) },
		"Insert(3)": func(l *linear.Linear[string]) error {
			return l.Insert(3, ValueX, ValueX)
		},
		"Insert(-1)": func(l *linear.Linear[string]) error { return l.Insert(-1, ValueX) },
		"Remove(2)":  func(l *linear.Linear[string]) error { return l.Remove(2) },
		"Remove(-1)": func(l *linear.Linear[string]) error { return l.Remove(-1) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			l := linear.From(want...)
			err := op(l)
			require.ErrorIs(t, err, linear.ErrIndexOutOfRange)
			assert.Contains(t, err.Error(), "length=2")
			MustContents(t, l, want, name)
		})
	}
}

// TestErrors_EmptyList checks removal from an empty list.
func TestErrors_EmptyList(t *testing.T) {
	l := linear.New[string]()

	require.ErrorIs(t, l.RemoveHead(), linear.ErrEmptyList)
	require.ErrorIs(t, l.Remove(3), linear.ErrEmptyList, "emptiness is reported before range")
	MustContents(t, l, nil, "after failed removals")

	_, err := l.Get(0)
	require.ErrorIs(t, err, linear.ErrIndexOutOfRange)
}
