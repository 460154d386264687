// Package dynamics: sentinel error set.
// All public operations return these sentinels (possibly wrapped with a
// context tag via fmt.Errorf("ctx: %w", ...)); tests match via errors.Is.
// Every precondition violation is detected at the boundary — the engine has
// no partial-success mode and never lets NaN/garbage flow downstream.

package dynamics

import "errors"

var (
	// ErrNilInput indicates a nil matrix, cube or required slice argument.
	ErrNilInput = errors.New("dynamics: nil input")

	// ErrDimensionMismatch indicates an input array whose shape disagrees
	// with the run's (maxage, pyears, nareas) geometry.
	ErrDimensionMismatch = errors.New("dynamics: dimension mismatch")

	// ErrUnknownSRR indicates an unsupported stock-recruitment relationship
	// selector. Only BevertonHolt and Ricker are defined.
	ErrUnknownSRR = errors.New("dynamics: unsupported stock-recruit relationship")

	// ErrUnknownControl indicates an unsupported fishing-control mode.
	// Only EffortControl, ApicalFControl and UnfishedControl are defined.
	ErrUnknownControl = errors.New("dynamics: unsupported control mode")

	// ErrNegativeRate signals a negative value where a non-negative rate or
	// count is required (mortality, numbers-at-age, effort, catchability,
	// movement fractions, area sizes).
	ErrNegativeRate = errors.New("dynamics: negative rate or count")

	// ErrNaNInf signals a NaN or ±Inf input where finite values are required.
	ErrNaNInf = errors.New("dynamics: NaN or Inf encountered")

	// ErrPlusGroupMortality signals a plus-group divisor 1-exp(-Z) ≤ 0,
	// i.e. total mortality Z ≤ 0 in the terminal age class. A caller
	// precondition violation, never silently divided.
	ErrPlusGroupMortality = errors.New("dynamics: non-positive plus-group mortality")

	// ErrAllAreasClosed signals that a year's closure mask removed every
	// open area, leaving no destination for the fishing effort. The area
	// rescale is undefined at fracE == 0, so the run fails fast.
	ErrAllAreasClosed = errors.New("dynamics: all areas closed to fishing")

	// ErrShortRecDevs indicates fewer recruitment deviations than the
	// pyears+maxage entries the driver consumes.
	ErrShortRecDevs = errors.New("dynamics: recruitment deviation series too short")

	// ErrVanishedBiomass signals a zero vulnerable-biomass total while a
	// spatial effort allocation is required; the targeting power-weights
	// are undefined on an all-zero stock.
	ErrVanishedBiomass = errors.New("dynamics: vulnerable biomass sum is zero")
)
