// SPDX-License-Identifier: MIT
// Package linear: sentinel error set.
// Every message is prefixed with "linear: ...". Operations wrap these
// sentinels with index/length context via fmt.Errorf("%w: ..."); callers
// match them with errors.Is.

package linear

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates an index outside the range accepted by
	// the operation ([0, Length()) for access, [0, Length()] for Insert).
	ErrIndexOutOfRange = errors.New("linear: index out of range")

	// ErrEmptyList indicates a removal was attempted on a list with no nodes.
	ErrEmptyList = errors.New("linear: list is empty")
)

// outOfRange wraps ErrIndexOutOfRange with the offending index and length.
func outOfRange(index, length int) error {
	return fmt.Errorf("%w: index=%d length=%d", ErrIndexOutOfRange, index, length)
}
