// SPDX-License-Identifier: MIT

package scorematrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "scorematrix: ..." for grep-ability.
// Callers match with errors.Is; context is attached with %w wrapping.
var (
	// ErrAllocation is returned when the requested matrix cannot be allocated:
	// rows×cols overflows the platform int, the byte size exceeds the
	// addressable range, the cell budget is exceeded, or the runtime rejects
	// the allocation.
	ErrAllocation = errors.New("scorematrix: allocation failed")

	// ErrBadShape is returned for negative dimensions.
	ErrBadShape = errors.New("scorematrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/Row) return this, they never panic.
	ErrOutOfRange = errors.New("scorematrix: index out of range")

	// ErrReleased is returned by accessors used after Release.
	ErrReleased = errors.New("scorematrix: matrix released")

	// ErrOptionViolation is returned when an invalid Option value is supplied.
	ErrOptionViolation = errors.New("scorematrix: invalid option supplied")
)

// Method tags used in error wrappers.
const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
)

// matrixErrorf wraps a sentinel with method context and the offending coordinates.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
