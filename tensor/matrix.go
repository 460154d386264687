// SPDX-License-Identifier: MIT

// Package tensor - Matrix: dense 2-D storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index
//     formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead
//     of panicking.
//   - Enforce the numeric policy (rejection of NaN/±Inf on write) from a
//     single source of truth.
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c);
//     Sum/Fill/Scale: O(r*c).

package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"       // method tag used in error wrappers
	ctxSet     = "Set"      // method tag used in error wrappers
	ctxRow     = "Row"      // method tag used in error wrappers
	ctxCol     = "Col"      // method tag used in error wrappers
	ctxColSum  = "ColSum"   // method tag used in error wrappers
	ctxFromRow = "FromRows" // ctor tag used in error wrappers
)

// matrixErrorf wraps an error with a uniform Matrix context and callsite indices.
// Keeps tags in constants for grep-ability and consistency.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is a concrete row-major 2-D array of float64 values.
//   - r, c hold the dimensions (rows, cols), fixed at allocation.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Matrix struct {
	r, c int       // row and column counts (always > 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// NewMatrix creates an r×c zero matrix using row-major storage.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice (zero-initialized).
// Stage 3 (Finalize): return the new Matrix or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewMatrix(rows, cols int) (*Matrix, error) {
	// Validate dimensions before touching the allocator.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Matrix from a rectangular [][]float64.
// Stage 1 (Validate): non-empty input, equal row lengths, finite entries.
// Stage 2 (Execute): copy row by row into the flat buffer.
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Matrix, error) {
	// Reject empty shells early.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRow, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewMatrix(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRow, err)
	}
	for i, row := range rows {
		// Every row must match the width of the first.
		if len(row) != c {
			return nil, matrixErrorf(ctxFromRow, i, len(row), ErrDimensionMismatch)
		}
		for j, v := range row {
			// Ingestion enforces the finite-value policy, same as Set.
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, matrixErrorf(ctxFromRow, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= m.c {
		return 0, matrixErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from the flat buffer.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set writes v at (row, col), rejecting NaN and ±Inf per the numeric policy.
// Stage 1 (Validate): bounds check, then finite-value check.
// Stage 2 (Execute): write into the flat buffer.
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return matrixErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Data returns the flat row-major backing slice (NOT a copy).
// Mutations through the slice are visible to the matrix; the finite-value
// policy is NOT enforced on this path. Intended for hot kernels that have
// already validated their inputs.
func (m *Matrix) Data() []float64 { return m.data }

// Clone returns a deep copy with independent backing storage.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Fill sets every element to v. Complexity: O(r*c).
func (m *Matrix) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Scale multiplies every element by alpha in place. Complexity: O(r*c).
func (m *Matrix) Scale(alpha float64) {
	floats.Scale(alpha, m.data)
}

// Sum returns the sum of all elements. Complexity: O(r*c).
func (m *Matrix) Sum() float64 {
	return floats.Sum(m.data)
}

// Col copies column j into a fresh slice of length Rows().
// Complexity: O(r).
func (m *Matrix) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, matrixErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// ColSum returns the sum of column j. Complexity: O(r).
func (m *Matrix) ColSum(j int) (float64, error) {
	if j < 0 || j >= m.c {
		return 0, matrixErrorf(ctxColSum, 0, j, ErrOutOfRange)
	}
	var s float64
	for i := 0; i < m.r; i++ {
		s += m.data[i*m.c+j]
	}

	return s, nil
}

// Row returns a no-copy view of row i (a sub-slice of the backing storage).
// Mutations through the view are visible to the matrix.
// Complexity: O(1).
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c], nil
}
