// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the tensor
// package. All constructors and accessors MUST return these sentinels and
// tests MUST check them via errors.Is. No routine panics on user-triggered
// error conditions.

package tensor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tensor: ..." for consistency and to allow
// easy grepping across logs. Do not %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the detection site — callers still match via errors.Is.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	// Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("tensor: dimensions must be > 0")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g. elementwise ops over differently shaped matrices, or a row set
	// whose length differs from the column count.
	ErrDimensionMismatch = errors.New("tensor: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (Set, FromRows ingestion).
	ErrNaNInf = errors.New("tensor: NaN or Inf encountered")

	// ErrNil indicates that a nil *Matrix or *Cube was used.
	ErrNil = errors.New("tensor: nil receiver or argument")
)
