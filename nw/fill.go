// SPDX-License-Identifier: MIT

package nw

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/nwalign/scorematrix"
)

// Fill: Needleman–Wunsch score matrix
//
// Algorithm Outline:
//  1. Sizing: rows = len(a)+1, cols = len(b)+1.
//  2. Allocation: one rows×cols scorematrix.Matrix; failure → ErrAllocation,
//     nothing else is done.
//  3. Boundary:
//     M[0][j] = j·Gap for j = 0..cols-1
//     M[i][0] = i·Gap for i = 0..rows-1
//  4. For i = 1..rows-1 (context checked once per row):
//     For j = 1..cols-1:
//     delete = M[i-1][j]   + Gap
//     insert = M[i][j-1]   + Gap
//     diag   = M[i-1][j-1] + (Match if a[i-1]==b[j-1] else Mismatch)
//     M[i][j] = max(delete, insert, diag)
//  5. The score is M[rows-1][cols-1].
//
// The caller owns the returned matrix. On any error the matrix has already
// been released and nil is returned: there is no partial result.
//
// Complexity:
//
//	Time   = O(len(a)·len(b))
//	Memory = O(len(a)·len(b))
func Fill[T comparable](ctx context.Context, a, b []T, s Scoring, maxCells int) (*scorematrix.Matrix, error) {
	rows, cols := len(a)+1, len(b)+1
	if err := checkScoreRange(rows, cols, s); err != nil {
		return nil, err
	}

	m, err := scorematrix.New(rows, cols, scorematrix.WithMaxCells(maxCells))
	if err != nil {
		Logger().Debug("score matrix allocation failed",
			zap.Int("rows", rows),
			zap.Int("cols", cols),
			zap.Error(err))

		return nil, err
	}
	if err = fillMatrix(ctx, m, a, b, s); err != nil {
		m.Release()

		return nil, err
	}

	return m, nil
}

// fillMatrix runs the boundary initialization and the interior recurrence on m.
func fillMatrix[T comparable](ctx context.Context, m *scorematrix.Matrix, a, b []T, s Scoring) error {
	rows, cols := m.Rows(), m.Cols()
	for j := 0; j < cols; j++ {
		m.Put(0, j, j*s.Gap)
	}
	for i := 0; i < rows; i++ {
		m.Put(i, 0, i*s.Gap)
	}

	for i := 1; i < rows; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		ai := a[i-1]
		for j := 1; j < cols; j++ {
			del := m.Get(i-1, j) + s.Gap
			ins := m.Get(i, j-1) + s.Gap
			diag := m.Get(i-1, j-1) + s.substitution(ai == b[j-1])
			m.Put(i, j, max(del, ins, diag))
		}
	}

	return nil
}

// FillRolling returns the same score as Fill while keeping only two rows of
// the shorter sequence. The score is symmetric in (a, b), so the longer input
// always drives the outer loop.
//
// Complexity:
//
//	Time   = O(len(a)·len(b))
//	Memory = O(min(len(a), len(b)))
func FillRolling[T comparable](ctx context.Context, a, b []T, s Scoring) (int, error) {
	if len(b) > len(a) {
		a, b = b, a
	}
	rows, cols := len(a)+1, len(b)+1
	if err := checkScoreRange(rows, cols, s); err != nil {
		return 0, err
	}

	m, err := scorematrix.New(2, cols, scorematrix.WithMaxCells(0))
	if err != nil {
		return 0, err
	}
	defer m.Release()

	for j := 0; j < cols; j++ {
		m.Put(0, j, j*s.Gap)
	}
	for i := 1; i < rows; i++ {
		if err = ctx.Err(); err != nil {
			return 0, err
		}
		cur, prev := i%2, (i-1)%2
		m.Put(cur, 0, i*s.Gap)
		ai := a[i-1]
		for j := 1; j < cols; j++ {
			del := m.Get(prev, j) + s.Gap
			ins := m.Get(cur, j-1) + s.Gap
			diag := m.Get(prev, j-1) + s.substitution(ai == b[j-1])
			m.Put(cur, j, max(del, ins, diag))
		}
	}

	return m.Get((rows-1)%2, cols-1), nil
}

// checkScoreRange rejects shapes whose cells could overflow int: every cell is
// bounded by (i+j)·max(|Match|, |Mismatch|, |Gap|).
func checkScoreRange(rows, cols int, s Scoring) error {
	limit := max(absInt(s.Match), absInt(s.Mismatch), absInt(s.Gap))
	if limit == 0 {
		return nil
	}
	if uint(rows)+uint(cols) > uint(math.MaxInt/limit) {
		return fmt.Errorf("%w: %d×%d cells overflow the score range", ErrAllocation, rows, cols)
	}

	return nil
}

// absInt returns |x|. Scores are bounded by scoreLimit, so -x cannot overflow.
func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
