// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Provide small element-wise slice kernels shared by the projection
//     engine, so tight loops are not duplicated across packages.
//   - Keep all loops deterministic and cache-friendly over flat buffers.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1). No hidden allocations.
//   - Kernels operate in place on the caller's slice.

package tensor

import "gonum.org/v1/gonum/floats"

// ClampMax caps every element of x at hi in place: x[i] = min(x[i], hi).
// Values above the cap are clamped to the cap, not rescaled.
// Time: O(n). Space: O(1).
func ClampMax(x []float64, hi float64) {
	for i, v := range x {
		if v > hi {
			x[i] = hi
		}
	}
}

// Normalize rescales x in place so its elements sum to 1 and reports the
// pre-scale total. When the total is zero the slice is left untouched and
// ok is false — the caller decides how to treat a degenerate distribution.
// Time: O(n). Space: O(1).
func Normalize(x []float64) (total float64, ok bool) {
	total = floats.Sum(x)
	if total == 0 {
		return 0, false
	}
	floats.Scale(1/total, x)

	return total, true
}
