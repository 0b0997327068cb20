// SPDX-License-Identifier: MIT

package nw

import (
	"errors"

	"github.com/katalvlaran/nwalign/scorematrix"
)

// Sentinel errors for alignment.
var (
	// ErrAllocation is the single runtime failure of an alignment: the score
	// matrix for the given lengths cannot be allocated. It is the same sentinel
	// as scorematrix.ErrAllocation so either can be matched with errors.Is.
	ErrAllocation = scorematrix.ErrAllocation

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("nw: invalid option supplied")

	// ErrTracebackNeedsMatrix indicates that traceback requires MemoryMode=FullMatrix.
	ErrTracebackNeedsMatrix = errors.New("nw: traceback requires MemoryMode=FullMatrix")

	// ErrMatrixMismatch is returned by Traceback when the matrix shape does not
	// match the sequences, or the matrix has been released.
	ErrMatrixMismatch = errors.New("nw: matrix does not match sequences")
)
