// SPDX-License-Identifier: MIT

package scorematrix

import (
	"fmt"
	"math"
	"math/bits"
	"runtime"
	"strconv"
	"strings"
)

// cellSize is the byte width of one int cell on this platform.
const cellSize = bits.UintSize / 8

// ---------- Formatting literals ----------
const (
	_fmtHeader = "Matrix %d×%d\n"
	_fmtSep    = " "
	_fmtEOL    = "\n"
)

// Matrix is a row-major matrix of int scores.
//   - rows, cols hold dimensions (zero allowed).
//   - data is a flat buffer of length rows*cols (offset = i*cols + j).
//   - released marks that the buffer has been dropped by Release.
type Matrix struct {
	rows, cols int
	data       []int
	released   bool
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// New allocates a zero-filled rows×cols matrix.
//
// Implementation:
//   - Stage 1: resolve options; negative dimensions → ErrBadShape.
//   - Stage 2: size the buffer with overflow-checked arithmetic and the cell budget.
//   - Stage 3: allocate, converting a runtime allocation panic into ErrAllocation.
//
// Errors:
//   - ErrOptionViolation, ErrBadShape, ErrAllocation (wrapped with the requested shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrBadShape, rows, cols)
	}

	cells, err := cellCount(rows, cols, o.MaxCells)
	if err != nil {
		return nil, err
	}
	buf, err := allocate(cells)
	if err != nil {
		return nil, fmt.Errorf("%w (%d×%d)", err, rows, cols)
	}

	return &Matrix{rows: rows, cols: cols, data: buf}, nil
}

// cellCount returns rows*cols after checking it against the platform int, the
// addressable byte size and the cell budget (maxCells == 0 disables the budget).
func cellCount(rows, cols, maxCells int) (int, error) {
	hi, cells := bits.Mul(uint(rows), uint(cols))
	if hi != 0 || cells > math.MaxInt {
		return 0, fmt.Errorf("%w: %d×%d cells overflow int", ErrAllocation, rows, cols)
	}
	hi, size := bits.Mul(cells, cellSize)
	if hi != 0 || size > math.MaxInt {
		return 0, fmt.Errorf("%w: %d cells exceed the addressable size", ErrAllocation, cells)
	}
	if maxCells > 0 && cells > uint(maxCells) {
		return 0, fmt.Errorf("%w: %d cells exceed budget of %d", ErrAllocation, cells, maxCells)
	}

	return int(cells), nil
}

// allocate makes the backing buffer. The runtime reports oversized slices with a
// runtime.Error panic; that panic is the only one converted into ErrAllocation.
func allocate(cells int) (buf []int, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			buf, err = nil, fmt.Errorf("%w: %v", ErrAllocation, re)
		}
	}()

	return make([]int, cells), nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Len returns rows*cols, or 0 once released.
func (m *Matrix) Len() int { return len(m.data) }

// Released reports whether Release has been called.
func (m *Matrix) Released() bool { return m.released }

// Release drops the backing buffer. Calling it more than once is a no-op, so it
// can be deferred unconditionally alongside an explicit early release.
func (m *Matrix) Release() {
	if m == nil || m.released {
		return
	}
	m.data = nil
	m.released = true
}

// indexOf computes the flat index for (row, col) or returns a wrapped sentinel.
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if m.released {
		return 0, matrixErrorf(method, row, col, ErrReleased)
	}
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.cols + col, nil
}

// At returns the value stored at (row, col).
func (m *Matrix) At(row, col int) (int, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set stores v at (row, col).
func (m *Matrix) Set(row, col, v int) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) ([]int, error) {
	if m.released {
		return nil, matrixErrorf(ctxRow, i, 0, ErrReleased)
	}
	if i < 0 || i >= m.rows {
		return nil, matrixErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]int, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])

	return out, nil
}

// Get is the hot-path reader used by fill loops. An out-of-range index is a
// programming error and panics (see the boundsChecked tier).
func (m *Matrix) Get(row, col int) int {
	if boundsChecked && (uint(row) >= uint(m.rows) || uint(col) >= uint(m.cols)) {
		panic(matrixErrorf("Get", row, col, ErrOutOfRange))
	}

	return m.data[row*m.cols+col]
}

// Put is the hot-path writer paired with Get.
func (m *Matrix) Put(row, col, v int) {
	if boundsChecked && (uint(row) >= uint(m.rows) || uint(col) >= uint(m.cols)) {
		panic(matrixErrorf("Put", row, col, ErrOutOfRange))
	}
	m.data[row*m.cols+col] = v
}

// String renders the matrix with a dimension header and right-aligned columns.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, _fmtHeader, m.rows, m.cols)
	if m.released {
		return sb.String()
	}

	width := 0
	for _, v := range m.data {
		if w := len(strconv.Itoa(v)); w > width {
			width = w
		}
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%*d", width, m.data[i*m.cols+j])
		}
		sb.WriteString(_fmtEOL)
	}

	return sb.String()
}
