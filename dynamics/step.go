package dynamics

import (
	"math"

	"github.com/katalvlaran/popdyn/tensor"
)

// ProjectOneStep — single-step population projector.
//
// Description:
//
//	Advances numbers-at-age across one year within each area, then
//	redistributes the result across areas through a per-age movement
//	tensor. Pure function of its inputs: no internal state.
//
// Algorithm Outline (per area):
//  1. Recruitment (age 0) from the selected stock-recruit relationship:
//     BevertonHolt: N0 = dev * 4*R0*h*SSB / (SSBpR*R0*(1-h) + (5h-1)*SSB)
//     Ricker:       N0 = dev * a*SSB * exp(-b*SSB)
//  2. Survival (ages 1..maxage-1): N[age] = Nprev[age-1] * exp(-Zprev[age-1]).
//  3. Plus-group (optional): divide the terminal class by 1-exp(-Z[last]),
//     approximating an open-ended accumulating age class under constant
//     mortality. Z[last] ≤ 0 is rejected (ErrPlusGroupMortality).
//  4. Movement (per age): N'[age][to] = Σ_from N[age][from] * mov[age][from][to].
//     The only cross-area coupling in the system.
//
// Shapes: n, z are (maxage × nareas); mov is (maxage × nareas × nareas);
// ssb, r0, ssbpr, recA, recB have length nareas.
//
// Preconditions (validated on entry): finite non-negative numbers and
// mortality, a defined srr selector, matching shapes. SSBpR·R0 must be
// positive by construction for BevertonHolt — a zero SSB then yields zero
// recruits without any division-by-zero guard.
//
// Complexity: Time O(maxage · nareas²), Space O(maxage · nareas).
//
// Errors:
//   - ErrNilInput / ErrDimensionMismatch / ErrNaNInf / ErrNegativeRate —
//     boundary violations.
//   - ErrUnknownSRR — undefined relationship selector.
//   - ErrPlusGroupMortality — plus-group enabled with Z[last] ≤ 0.
func ProjectOneStep(ssb []float64, n, z *tensor.Matrix, dev, h float64,
	r0, ssbpr, recA, recB []float64, mov *tensor.Cube, srr SRR,
	plusGroup bool) (*tensor.Matrix, error) {
	if err := validateStep(ssb, n, z, dev, h, r0, ssbpr, recA, recB, mov, srr); err != nil {
		return nil, err
	}
	maxage, nareas := n.Rows(), n.Cols()

	// Shape validity was just established; constructors cannot fail here.
	next, _ := tensor.NewMatrix(maxage, nareas)
	pre, _ := tensor.NewMatrix(maxage, nareas)
	if err := projectStep(next, pre, ssb, n, z, dev, h, r0, ssbpr, recA, recB, mov, srr, plusGroup); err != nil {
		return nil, err
	}

	return next, nil
}

// projectStep is the validated kernel behind ProjectOneStep, shared with
// the multi-year driver (which validates once per run, not per year).
// dst receives post-movement numbers; pre is caller-provided scratch for
// the pre-movement state. Both must be (maxage × nareas).
func projectStep(dst, pre *tensor.Matrix, ssb []float64, n, z *tensor.Matrix,
	dev, h float64, r0, ssbpr, recA, recB []float64, mov *tensor.Cube,
	srr SRR, plusGroup bool) error {
	maxage, nareas := n.Rows(), n.Cols()
	nd, zd, pd, dd := n.Data(), z.Data(), pre.Data(), dst.Data()
	md := mov.Data()

	for area := 0; area < nareas; area++ {
		// Recruitment into age 0.
		switch srr {
		case BevertonHolt:
			pd[area] = dev * (4 * r0[area] * h * ssb[area]) /
				(ssbpr[area]*r0[area]*(1-h) + (5*h-1)*ssb[area])
		case Ricker:
			pd[area] = dev * recA[area] * ssb[area] * math.Exp(-recB[area]*ssb[area])
		}

		// Survival under total mortality.
		for age := 1; age < maxage; age++ {
			pd[age*nareas+area] = nd[(age-1)*nareas+area] * math.Exp(-zd[(age-1)*nareas+area])
		}

		// Plus-group: the terminal class accumulates survivors rather than
		// being treated as a terminal cohort.
		if plusGroup {
			last := (maxage - 1) * nareas
			div := 1 - math.Exp(-zd[last+area])
			if div <= 0 {
				return validatorErrorf("step: plus-group", ErrPlusGroupMortality)
			}
			pd[last+area] /= div
		}
	}

	// Movement: applied independently per age; every destination sums the
	// contributions of all source areas before anything downstream reads it.
	for age := 0; age < maxage; age++ {
		ageBase := age * nareas
		movBase := mov.Offset(age, 0, 0)
		for to := 0; to < nareas; to++ {
			var s float64
			for from := 0; from < nareas; from++ {
				s += pd[ageBase+from] * md[movBase+from*nareas+to]
			}
			dd[ageBase+to] = s
		}
	}

	return nil
}
