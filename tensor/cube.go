// SPDX-License-Identifier: MIT

// Package tensor - Cube: dense 3-D storage (row-major) & safe accessors.
//
// Purpose:
//   - Store full (age × year × area) trajectories and (age × from × to)
//     movement tensors in one flat buffer with the explicit index formula
//     (i*y + j)*z + k.
//   - Mirror the Matrix safety contract: At/Set return errors, never panic;
//     Set rejects NaN/±Inf.
//
// Complexity quicksheet:
//   - NewCube: O(x*y*z) zero-init; At/Set: O(1); Clone/Fill/Sum: O(x*y*z).

package tensor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// cubeErrorf wraps an error with a uniform Cube context and callsite indices.
func cubeErrorf(method string, i, j, k int, err error) error {
	return fmt.Errorf("Cube.%s(%d,%d,%d): %w", method, i, j, k, err)
}

// Cube is a concrete row-major 3-D array of float64 values.
//   - x, y, z hold the dimensions of the three axes, fixed at allocation.
//   - data is a flat buffer of length x*y*z; offset = (i*y + j)*z + k.
//
// Axis meaning is the caller's convention: the projection engine uses
// (age, year, area) for trajectories and (age, from-area, to-area) for
// movement tensors.
type Cube struct {
	x, y, z int       // axis extents (always > 0)
	data    []float64 // contiguous row-major storage (len == x*y*z)
}

// NewCube creates an x×y×z zero cube using row-major storage.
// Stage 1 (Validate): ensure all extents > 0.
// Stage 2 (Prepare): allocate the flat backing slice (zero-initialized).
// Complexity: O(x*y*z) time and memory.
func NewCube(x, y, z int) (*Cube, error) {
	if x <= 0 || y <= 0 || z <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Cube{x: x, y: y, z: z, data: make([]float64, x*y*z)}, nil
}

// Dims returns the three axis extents. Complexity: O(1).
func (c *Cube) Dims() (x, y, z int) { return c.x, c.y, c.z }

// indexOf computes the flat index for (i, j, k) or returns ErrOutOfRange.
// Complexity: O(1).
func (c *Cube) indexOf(method string, i, j, k int) (int, error) {
	if i < 0 || i >= c.x {
		return 0, cubeErrorf(method, i, j, k, ErrOutOfRange)
	}
	if j < 0 || j >= c.y {
		return 0, cubeErrorf(method, i, j, k, ErrOutOfRange)
	}
	if k < 0 || k >= c.z {
		return 0, cubeErrorf(method, i, j, k, ErrOutOfRange)
	}

	return (i*c.y+j)*c.z + k, nil
}

// At retrieves the element at (i, j, k).
// Complexity: O(1).
func (c *Cube) At(i, j, k int) (float64, error) {
	idx, err := c.indexOf(ctxAt, i, j, k)
	if err != nil {
		return 0, err
	}

	return c.data[idx], nil
}

// Set writes v at (i, j, k), rejecting NaN and ±Inf per the numeric policy.
// Complexity: O(1).
func (c *Cube) Set(i, j, k int, v float64) error {
	idx, err := c.indexOf(ctxSet, i, j, k)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return cubeErrorf(ctxSet, i, j, k, ErrNaNInf)
	}
	c.data[idx] = v

	return nil
}

// Data returns the flat row-major backing slice (NOT a copy).
// Mutations through the slice are visible to the cube; the finite-value
// policy is NOT enforced on this path. Intended for hot kernels that have
// already validated their inputs.
func (c *Cube) Data() []float64 { return c.data }

// Offset returns the flat index of (i, j, k) WITHOUT bounds checking.
// Callers must guarantee 0 ≤ i < x, 0 ≤ j < y, 0 ≤ k < z; use together
// with Data() in validated hot loops only.
func (c *Cube) Offset(i, j, k int) int { return (i*c.y+j)*c.z + k }

// Clone returns a deep copy with independent backing storage.
// Complexity: O(x*y*z).
func (c *Cube) Clone() *Cube {
	out := &Cube{x: c.x, y: c.y, z: c.z, data: make([]float64, len(c.data))}
	copy(out.data, c.data)

	return out
}

// Fill sets every element to v. Complexity: O(x*y*z).
func (c *Cube) Fill(v float64) {
	for i := range c.data {
		c.data[i] = v
	}
}

// Sum returns the sum of all elements. Complexity: O(x*y*z).
func (c *Cube) Sum() float64 {
	return floats.Sum(c.data)
}
