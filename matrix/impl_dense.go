// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//   - Accept +Inf as a regular value: it is the "unreachable" travel cost.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewFromRows: O(r*c) copy; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"          // method tag used in error wrappers
	ctxSet      = "Set"         // method tag used in error wrappers
	ctxFromRows = "NewFromRows" // ctor tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtInf      = "inf"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w so callers keep using errors.Is.
//
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (>0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFromRows copies a square [][]float64 literal into a fresh Dense.
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidDimensions).
//   - Stage 2: every row must have len(rows) entries; a ragged row yields
//     ErrDimensionMismatch, a rectangular-but-not-square input ErrNonSquare.
//   - Stage 3: copy values; NaN is refused with ErrNaN, ±Inf is kept.
//
// The input slice is never retained, so later mutations of rows do not leak
// into the matrix.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewFromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}

	var (
		i, j int
		w    float64
	)
	// Rectangular but not square is distinguished from ragged.
	for i = 1; i < n; i++ {
		if len(rows[i]) != len(rows[0]) {
			return nil, fmt.Errorf("%s: row %d has %d entries, row 0 has %d: %w",
				ctxFromRows, i, len(rows[i]), len(rows[0]), ErrDimensionMismatch)
		}
	}
	if len(rows[0]) != n {
		return nil, fmt.Errorf("%s: %d×%d: %w", ctxFromRows, n, len(rows[0]), ErrNonSquare)
	}

	m := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w = rows[i][j]
			if math.IsNaN(w) {
				return nil, denseErrorf(ctxFromRows, i, j, ErrNaN)
			}
			m.data[i*n+j] = w
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
//
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel instead.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaN for NaN values.
//
// +Inf is accepted: it records an unreachable pair.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) {
		return denseErrorf(ctxSet, row, col, ErrNaN)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i, or ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy (new buffer).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders rows as bracketed, comma-separated lines; +Inf prints as "inf".
// Cells use the same spelling as the instance literal grammar.
//
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(formatCost(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// formatCost prints finite values with %g semantics and +Inf as "inf".
func formatCost(w float64) string {
	if IsUnreachable(w) {
		return _fmtInf
	}

	return strconv.FormatFloat(w, 'g', -1, 64)
}

// FormatCost is the exported form of the cost printer used by String.
// It is shared by reports so that "unreachable" always reads the same.
func FormatCost(w float64) string { return formatCost(w) }

// Flat returns a copy of the row-major backing buffer.
// Solvers use it to run hot loops on plain slices without interface calls.
//
// Complexity: O(r*c).
func (m *Dense) Flat() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}
