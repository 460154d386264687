// Package: dynamics
//
// Purpose:
//  - Provide a single, canonical source of truth for boundary validation.
//  - Keep the projection kernels minimal by delegating shape/nil/domain
//    checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites and
//    tests can match via errors.Is while keeping messages greppable.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, allocation-free.
//  - Full-table scans (finiteness, sign) are O(size of table) and run once
//    per call, on entry — never inside the year loop.

package dynamics

import (
	"fmt"
	"math"

	"github.com/katalvlaran/popdyn/tensor"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateMatrix ensures m is non-nil, shaped rows×cols, finite, and (when
// nonneg) free of negative entries.
func validateMatrix(tag string, m *tensor.Matrix, rows, cols int, nonneg bool) error {
	if m == nil {
		return validatorErrorf(tag, ErrNilInput)
	}
	if m.Rows() != rows || m.Cols() != cols {
		return validatorErrorf(tag, ErrDimensionMismatch)
	}
	for _, v := range m.Data() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(tag, ErrNaNInf)
		}
		if nonneg && v < 0 {
			return validatorErrorf(tag, ErrNegativeRate)
		}
	}

	return nil
}

// validateCube ensures c is non-nil, shaped x×y×z, finite and non-negative.
// Movement tensors and population cubes are fractions/counts: both must be ≥ 0.
func validateCube(tag string, c *tensor.Cube, x, y, z int) error {
	if c == nil {
		return validatorErrorf(tag, ErrNilInput)
	}
	cx, cy, cz := c.Dims()
	if cx != x || cy != y || cz != z {
		return validatorErrorf(tag, ErrDimensionMismatch)
	}
	for _, v := range c.Data() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(tag, ErrNaNInf)
		}
		if v < 0 {
			return validatorErrorf(tag, ErrNegativeRate)
		}
	}

	return nil
}

// validateVec ensures x has exactly n finite entries, non-negative when
// nonneg is set.
func validateVec(tag string, x []float64, n int, nonneg bool) error {
	if x == nil {
		return validatorErrorf(tag, ErrNilInput)
	}
	if len(x) != n {
		return validatorErrorf(tag, ErrDimensionMismatch)
	}
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(tag, ErrNaNInf)
		}
		if nonneg && v < 0 {
			return validatorErrorf(tag, ErrNegativeRate)
		}
	}

	return nil
}

// validateScalar ensures v is finite, and non-negative when nonneg is set.
func validateScalar(tag string, v float64, nonneg bool) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return validatorErrorf(tag, ErrNaNInf)
	}
	if nonneg && v < 0 {
		return validatorErrorf(tag, ErrNegativeRate)
	}

	return nil
}

// validateStep guards the public single-step projector. Geometry is taken
// from n: maxage = n.Rows(), nareas = n.Cols().
// Sequence: nil/shape → enum → scalar domain → table domain.
func validateStep(ssb []float64, n, z *tensor.Matrix, dev, h float64,
	r0, ssbpr, recA, recB []float64, mov *tensor.Cube, srr SRR) error {
	if n == nil || z == nil {
		return validatorErrorf("step", ErrNilInput)
	}
	maxage, nareas := n.Rows(), n.Cols()
	if !srr.valid() {
		return validatorErrorf("step: srr", ErrUnknownSRR)
	}
	if err := validateMatrix("step: numbers", n, maxage, nareas, true); err != nil {
		return err
	}
	if err := validateMatrix("step: mortality", z, maxage, nareas, true); err != nil {
		return err
	}
	if err := validateVec("step: ssb", ssb, nareas, true); err != nil {
		return err
	}
	if err := validateVec("step: r0", r0, nareas, true); err != nil {
		return err
	}
	if err := validateVec("step: ssbpr", ssbpr, nareas, true); err != nil {
		return err
	}
	// Ricker parameters participate only under Ricker, but an invalid pair
	// is rejected regardless: garbage in a parameter group is a caller bug.
	if err := validateVec("step: recA", recA, nareas, true); err != nil {
		return err
	}
	if err := validateVec("step: recB", recB, nareas, true); err != nil {
		return err
	}
	if err := validateCube("step: movement", mov, maxage, nareas, nareas); err != nil {
		return err
	}
	if err := validateScalar("step: dev", dev, true); err != nil {
		return err
	}

	return validateScalar("step: steepness", h, true)
}

// validateRun guards the multi-year driver. Geometry: maxage = init.Rows(),
// nareas = init.Cols(), pyears supplied explicitly.
// Sequence: nil/shape of core arrays → enums → stock tables → fleet tables
// → grid → deviation series.
func validateRun(init *tensor.Matrix, pyears int, stock Stock, fleet Fleet,
	grid Grid, recDevs []float64, unfishedSSB float64) error {
	if init == nil {
		return validatorErrorf("run: init", ErrNilInput)
	}
	if pyears <= 0 {
		return validatorErrorf("run: pyears", ErrDimensionMismatch)
	}
	maxage, nareas := init.Rows(), init.Cols()
	if !stock.SRR.valid() {
		return validatorErrorf("run: srr", ErrUnknownSRR)
	}
	if !fleet.Control.valid() {
		return validatorErrorf("run: control", ErrUnknownControl)
	}
	if err := validateMatrix("run: init", init, maxage, nareas, true); err != nil {
		return err
	}

	// Stock tables.
	if err := validateMatrix("run: M", stock.M, maxage, pyears, true); err != nil {
		return err
	}
	if err := validateMatrix("run: maturity", stock.Maturity, maxage, pyears, true); err != nil {
		return err
	}
	if err := validateMatrix("run: weight", stock.Weight, maxage, pyears, true); err != nil {
		return err
	}
	if err := validateScalar("run: steepness", stock.Steepness, true); err != nil {
		return err
	}
	if err := validateVec("run: r0", stock.R0, nareas, true); err != nil {
		return err
	}
	if err := validateVec("run: ssbpr", stock.SSBpR, nareas, true); err != nil {
		return err
	}
	if err := validateVec("run: recA", stock.RecA, nareas, true); err != nil {
		return err
	}
	if err := validateVec("run: recB", stock.RecB, nareas, true); err != nil {
		return err
	}

	// Fleet tables.
	if err := validateMatrix("run: vulnerability", fleet.Vulnerability, maxage, pyears, true); err != nil {
		return err
	}
	if err := validateMatrix("run: retention", fleet.Retention, maxage, pyears, true); err != nil {
		return err
	}
	if err := validateVec("run: effort", fleet.Effort, pyears, true); err != nil {
		return err
	}
	if err := validateScalar("run: catchability", fleet.Catchability, true); err != nil {
		return err
	}
	if err := validateScalar("run: apicalF", fleet.ApicalF, true); err != nil {
		return err
	}
	if err := validateScalar("run: spatTarget", fleet.SpatTarget, false); err != nil {
		return err
	}
	if err := validateScalar("run: maxF", fleet.MaxF, true); err != nil {
		return err
	}
	if err := validateMatrix("run: mpa", fleet.MPA, pyears, nareas, true); err != nil {
		return err
	}

	// Grid.
	if err := validateVec("run: areaSize", grid.AreaSize, nareas, true); err != nil {
		return err
	}
	for _, s := range grid.AreaSize {
		// Area size divides F; zero would manufacture +Inf mortality.
		if s == 0 {
			return validatorErrorf("run: areaSize", ErrNegativeRate)
		}
	}
	if grid.Movement == nil || len(grid.Movement) != pyears {
		return validatorErrorf("run: movement", ErrDimensionMismatch)
	}
	for y, mov := range grid.Movement {
		if err := validateCube(fmt.Sprintf("run: movement[%d]", y), mov, maxage, nareas, nareas); err != nil {
			return err
		}
	}

	// Deviations: the driver reads recDevs[yr+maxage] for yr < pyears-1,
	// keeping the conventional maxage-offset indexing of the series.
	if recDevs == nil {
		return validatorErrorf("run: recDevs", ErrNilInput)
	}
	if len(recDevs) < pyears+maxage {
		return validatorErrorf("run: recDevs", ErrShortRecDevs)
	}
	if err := validateVec("run: recDevs", recDevs, len(recDevs), true); err != nil {
		return err
	}

	// The unfished target only matters under UnfishedControl; a zero total
	// there would zero-divide the feedback rescale.
	if fleet.Control == UnfishedControl {
		if err := validateScalar("run: unfishedSSB", unfishedSSB, true); err != nil {
			return err
		}
		if unfishedSSB == 0 {
			return validatorErrorf("run: unfishedSSB", ErrNegativeRate)
		}
	}

	return nil
}
