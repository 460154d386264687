// Package tensor provides dense, fixed-shape numeric storage for
// population-dynamics arrays: a row-major Matrix (2-D) and Cube (3-D).
//
// 🚀 What is tensor?
//
//	The storage layer under the popdyn projection engine. Every quantity
//	the engine touches is a fixed-shape dense array:
//	  • Matrix — biological-rate tables (age × year), numbers-at-age
//	    snapshots (age × area), closure masks (year × area)
//	  • Cube — full trajectories (age × year × area) and per-age movement
//	    tensors (age × from-area × to-area)
//
// ✨ Key guarantees:
//   - Safety at the public surface: At/Set return errors, never panic
//   - Strict numeric policy: Set rejects NaN and ±Inf
//   - Deterministic layout: offset = i*c + j (Matrix),
//     offset = (i*y + j)*z + k (Cube); fixed loop orders everywhere
//   - Flat Data() fast path for hot kernels, in row-major order
//
// ⚙️ Usage:
//
//	m, err := tensor.NewMatrix(maxage, pyears)
//	if err != nil { ... }
//	_ = m.Set(0, 0, 0.2)
//	v, _ := m.At(0, 0)
//
// Shapes are fixed at allocation and never change; all mutation happens
// through Set or the documented Data() backing slice.
package tensor
