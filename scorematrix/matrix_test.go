// SPDX-License-Identifier: MIT

// Package scorematrix_test contains unit tests for the Matrix buffer.
package scorematrix_test

import (
	"math"
	"math/bits"
	"testing"

	"github.com/katalvlaran/nwalign/scorematrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Shapes verifies dimensions and zero-fill, including zero-sized shapes.
func TestNew_Shapes(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"square", 3, 3},
		{"wide", 1, 8},
		{"tall", 8, 1},
		{"zero rows", 0, 4},
		{"zero cols", 4, 0},
		{"empty", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := scorematrix.New(tc.rows, tc.cols)
			require.NoError(t, err)
			assert.Equal(t, tc.rows, m.Rows())
			assert.Equal(t, tc.cols, m.Cols())
			assert.Equal(t, tc.rows*tc.cols, m.Len())
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					assert.Zero(t, m.Get(i, j), "cell (%d,%d) must start at zero", i, j)
				}
			}
		})
	}
}

// TestNew_BadShape ensures negative dimensions are rejected before allocation.
func TestNew_BadShape(t *testing.T) {
	_, err := scorematrix.New(-1, 3)
	require.ErrorIs(t, err, scorematrix.ErrBadShape)

	_, err = scorematrix.New(3, -1)
	require.ErrorIs(t, err, scorematrix.ErrBadShape)
}

// TestNew_OverflowGuard ensures a rows×cols product that overflows int is an
// allocation failure, not a wrapped size or a crash.
func TestNew_OverflowGuard(t *testing.T) {
	_, err := scorematrix.New(math.MaxInt, 2, scorematrix.WithMaxCells(0))
	require.ErrorIs(t, err, scorematrix.ErrAllocation)

	_, err = scorematrix.New(math.MaxInt/2, math.MaxInt/2, scorematrix.WithMaxCells(0))
	require.ErrorIs(t, err, scorematrix.ErrAllocation)

	// cells fit in int but their byte size does not
	_, err = scorematrix.New(math.MaxInt/4, 2, scorematrix.WithMaxCells(0))
	require.ErrorIs(t, err, scorematrix.ErrAllocation)
}

// TestNew_RuntimeRejectsSize ensures the runtime's own size limit surfaces as
// ErrAllocation when no budget is configured.
func TestNew_RuntimeRejectsSize(t *testing.T) {
	if bits.UintSize < 64 {
		t.Skip("requires a 64-bit platform")
	}
	n := 1 << 25 // 2^50 cells, 2^53 bytes: fits int, exceeds the heap's address range
	_, err := scorematrix.New(n, n, scorematrix.WithMaxCells(0))
	require.ErrorIs(t, err, scorematrix.ErrAllocation)
}

// TestNew_CellBudget verifies the default and explicit cell budgets.
func TestNew_CellBudget(t *testing.T) {
	_, err := scorematrix.New(4, 4, scorematrix.WithMaxCells(15))
	require.ErrorIs(t, err, scorematrix.ErrAllocation)

	m, err := scorematrix.New(4, 4, scorematrix.WithMaxCells(16))
	require.NoError(t, err)
	assert.Equal(t, 16, m.Len())

	_, err = scorematrix.New(scorematrix.DefaultMaxCells, 2)
	require.ErrorIs(t, err, scorematrix.ErrAllocation, "default budget must apply")
}

// TestWithMaxCells_Negative ensures a negative budget is an option violation.
func TestWithMaxCells_Negative(t *testing.T) {
	_, err := scorematrix.New(1, 1, scorematrix.WithMaxCells(-1))
	require.ErrorIs(t, err, scorematrix.ErrOptionViolation)
}

// TestAtSet_OutOfRange ensures At and Set return ErrOutOfRange on invalid access.
func TestAtSet_OutOfRange(t *testing.T) {
	m, err := scorematrix.New(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, scorematrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, scorematrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), scorematrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), scorematrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, scorematrix.ErrOutOfRange)
}

// TestSetAt_RowMajor verifies Set/At round trips and the row-major layout seen by Row.
func TestSetAt_RowMajor(t *testing.T) {
	m, err := scorematrix.New(2, 3)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, m.Set(i, j, i*3+j))
		}
	}
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, row)

	// Row returns a copy
	row[0] = 99
	assert.Equal(t, 3, m.Get(1, 0))

	m.Put(0, 1, -7)
	v, err = m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, -7, v)
}

// TestRelease verifies release is idempotent and accessors report ErrReleased.
func TestRelease(t *testing.T) {
	m, err := scorematrix.New(2, 2)
	require.NoError(t, err)

	m.Release()
	m.Release()
	assert.True(t, m.Released())
	assert.Zero(t, m.Len())

	_, err = m.At(0, 0)
	require.ErrorIs(t, err, scorematrix.ErrReleased)
	require.ErrorIs(t, m.Set(0, 0, 1), scorematrix.ErrReleased)
	_, err = m.Row(0)
	require.ErrorIs(t, err, scorematrix.ErrReleased)
	assert.Panics(t, func() { m.Get(0, 0) })

	var nilMatrix *scorematrix.Matrix
	assert.NotPanics(t, func() { nilMatrix.Release() })
}

// TestString checks the aligned rendering and the header of a released matrix.
func TestString(t *testing.T) {
	m, err := scorematrix.New(2, 2)
	require.NoError(t, err)
	m.Put(0, 1, -1)
	m.Put(1, 1, 12)

	assert.Equal(t, "Matrix 2×2\n 0 -1\n 0 12\n", m.String())

	m.Release()
	assert.Equal(t, "Matrix 2×2\n", m.String())
}
