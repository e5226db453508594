// SPDX-License-Identifier: MIT
// Package linear_test contains fixtures and helpers shared by the linear tests.

package linear_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhi543/singlie/linear"
)

// Common values used across tests (avoid magic literals in test bodies).
const (
	ValueA = "A"
	ValueB = "B"
	ValueC = "C"
	ValueD = "D"
	ValueX = "X"

	SepSpace = " "
	SepPipe  = "|"
)

// bracket wraps a value in square brackets.
func bracket(s string) string {
	return "[" + s + "]"
}

// identity returns s unchanged.
func identity(s string) string {
	return s
}

// MustContents FAILS the test unless l holds exactly want, head to tail,
// and its bookkeeping (Length, Head, Last) agrees with the chain.
func MustContents(t *testing.T, l *linear.Linear[string], want []string, op string) {
	t.Helper()

	// ToSlice never returns nil; normalise want so nil means "empty".
	require.Equal(t, append([]string{}, want...), l.ToSlice(), "%s: values", op)
	require.Equal(t, len(want), l.Length(), "%s: Length()", op)
	require.Equal(t, len(want) == 0, l.IsEmpty(), "%s: IsEmpty()", op)

	head, okHead := l.Head()
	last, okLast := l.Last()
	if len(want) == 0 {
		require.False(t, okHead, "%s: Head() on empty list", op)
		require.False(t, okLast, "%s: Last() on empty list", op)
		return
	}
	require.True(t, okHead, "%s: Head() present", op)
	require.True(t, okLast, "%s: Last() present", op)
	require.Equal(t, want[0], head, "%s: Head()", op)
	require.Equal(t, want[len(want)-1], last, "%s: Last()", op)

	// Last node must terminate the chain.
	n, err := l.Node(len(want) - 1)
	require.NoError(t, err, "%s: Node(last)", op)
	require.Nil(t, n.Next, "%s: last node must have no Next", op)
}
