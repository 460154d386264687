package dynamics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// unfishedState is the control loop hidden inside an UnfishedControl run:
// per-area recruitment parameters are recomputed every year so regional
// recruitment progressively converges to a target spatial equilibrium.
// It is deliberately an explicit, named state update rather than logic
// inlined in the driver, to keep the year loop auditable.
//
// The state owns the evolving copies of R0 and the Ricker (a, b) pair; the
// caller's Stock slices are never touched. Everything here is local to one
// run — no state survives across runs.
type unfishedState struct {
	h         float64   // stock-wide steepness
	ssbpr     []float64 // unfished spawners-per-recruit by area (read-only)
	ssbTarget float64   // target total unfished SSB (SSB0)
	r0Total   float64   // total unfished recruitment across areas

	ssb0a []float64 // per-area unfished SSB target; overrides realized SSB from year 1 on
	r0a   []float64 // evolving per-area recruitment scale (shared with the driver)
	recA  []float64 // evolving Ricker a by area (shared with the driver)
	recB  []float64 // evolving Ricker b by area (shared with the driver)
}

// newUnfishedState wires the feedback over the driver's evolving parameter
// copies (r0a/recA/recB are mutated in place so the projector sees every
// yearly update without re-plumbing).
func newUnfishedState(h float64, ssbpr, r0a, recA, recB []float64, unfishedSSB float64) *unfishedState {
	return &unfishedState{
		h:         h,
		ssbpr:     ssbpr,
		ssbTarget: unfishedSSB,
		r0Total:   floats.Sum(r0a),
		ssb0a:     make([]float64, len(r0a)),
		r0a:       r0a,
		recA:      recA,
		recB:      recB,
	}
}

// update runs one iteration of the re-equilibration after the year
// transition has produced sbNext (spawning biomass by area for the new
// year; sbCurr is the previous year's realized spawning biomass):
//
//  1. rescale sbNext so its total matches the target unfished SSB — this
//     becomes the per-area SSB0 target and the SSB the next projection sees;
//  2. rescale sbCurr against total regional R0 — the evolving per-area
//     recruitment scale;
//  3. recompute Ricker (a, b) so each area's unfished equilibrium is
//     consistent with steepness h and its rescaled SSB0:
//     b = ln(5h) / (0.8·SSB0a),  a = exp(b·SSB0a) / SSBpR.
//
// Errors: ErrVanishedBiomass when either biomass total is zero — the
// rescale is undefined on a collapsed stock.
func (s *unfishedState) update(sbNext, sbCurr []float64) error {
	totNext := floats.Sum(sbNext)
	totCurr := floats.Sum(sbCurr)
	if totNext == 0 || totCurr == 0 {
		return validatorErrorf("feedback: update", ErrVanishedBiomass)
	}

	copy(s.ssb0a, sbNext)
	floats.Scale(s.ssbTarget/totNext, s.ssb0a)

	copy(s.r0a, sbCurr)
	floats.Scale(s.r0Total/totCurr, s.r0a)

	for area := range s.ssb0a {
		s.recB[area] = math.Log(5*s.h) / (0.8 * s.ssb0a[area])
		s.recA[area] = math.Exp(s.recB[area]*s.ssb0a[area]) / s.ssbpr[area]
	}

	return nil
}
