// Package dynamics: selectors, parameter groups and the result trajectory.

package dynamics

import (
	"github.com/katalvlaran/popdyn/tensor"
)

// SRR selects the stock-recruitment relationship mapping spawning biomass
// to age-0 recruits. The numeric values match the conventional 1/2 coding
// used by assessment toolchains.
type SRR int

const (
	// BevertonHolt: R = dev * 4*R0*h*SSB / (SSBpR*R0*(1-h) + (5h-1)*SSB).
	BevertonHolt SRR = iota + 1

	// Ricker: R = dev * a*SSB*exp(-b*SSB).
	Ricker
)

// String implements fmt.Stringer for diagnostics.
func (s SRR) String() string {
	switch s {
	case BevertonHolt:
		return "BevertonHolt"
	case Ricker:
		return "Ricker"
	default:
		return "SRR(unknown)"
	}
}

// valid reports whether s is a defined selector.
func (s SRR) valid() bool { return s == BevertonHolt || s == Ricker }

// Control selects the per-run fishing-control policy. The three modes are
// selectable policies, not state transitions: within a run the year index
// is the only evolving state.
type Control int

const (
	// EffortControl derives F from effort[year] × catchability × spatial
	// allocation × vulnerability / area size.
	EffortControl Control = iota + 1

	// ApicalFControl derives F the same way with an apical F in place of
	// effort × catchability.
	ApicalFControl

	// UnfishedControl applies no fishing mortality (Z = M only) and
	// re-equilibrates per-area recruitment each year toward a target
	// unfished spatial distribution.
	UnfishedControl
)

// String implements fmt.Stringer for diagnostics.
func (c Control) String() string {
	switch c {
	case EffortControl:
		return "EffortControl"
	case ApicalFControl:
		return "ApicalFControl"
	case UnfishedControl:
		return "UnfishedControl"
	default:
		return "Control(unknown)"
	}
}

// valid reports whether c is a defined selector.
func (c Control) valid() bool {
	return c == EffortControl || c == ApicalFControl || c == UnfishedControl
}

// Stock groups the biological inputs of a run. Rate tables are indexed
// (age × year); per-area vectors have length nareas.
type Stock struct {
	// M is natural mortality-at-age by year (maxage × pyears).
	M *tensor.Matrix

	// Maturity is the proportion mature at age by year (maxage × pyears).
	Maturity *tensor.Matrix

	// Weight is individual weight-at-age by year (maxage × pyears).
	Weight *tensor.Matrix

	// Steepness h of the stock-recruit relationship (stock-wide).
	Steepness float64

	// R0 is unfished recruitment by area.
	R0 []float64

	// SSBpR is unfished spawning biomass per recruit by area.
	SSBpR []float64

	// RecA, RecB are the Ricker a/b parameters by area. They must still
	// pass shape and domain checks under BevertonHolt, which otherwise
	// ignores them. Under UnfishedControl the driver evolves its own
	// copies; the caller's slices are never mutated.
	RecA, RecB []float64

	// SRR selects the stock-recruitment relationship.
	SRR SRR

	// PlusGroup folds the terminal age class into an open-ended
	// accumulating group instead of a terminal cohort.
	PlusGroup bool
}

// Fleet groups the exploitation inputs of a run.
type Fleet struct {
	// Vulnerability is the age-specific probability of being caught given
	// effort, by year (maxage × pyears).
	Vulnerability *tensor.Matrix

	// Retention is the age-specific probability a caught individual is
	// kept, by year (maxage × pyears).
	Retention *tensor.Matrix

	// Effort is fishing effort by year (length pyears). Used under
	// EffortControl only.
	Effort []float64

	// Catchability scales effort into fishing mortality (EffortControl).
	Catchability float64

	// ApicalF is the maximum F across ages (ApicalFControl).
	ApicalF float64

	// SpatTarget is the spatial-targeting exponent: effort is allocated
	// proportionally to vulnerable biomass raised to this power.
	SpatTarget float64

	// MaxF caps the instantaneous fishing mortality per timestep.
	// Values above the cap are clamped, not rescaled.
	MaxF float64

	// MPA is the per-year, per-area openness indicator (pyears × nareas):
	// 1 open, 0 closed. Closed-area effort is redistributed among open
	// areas (no effort is lost), except in year 0 where no mask applies.
	MPA *tensor.Matrix

	// Control selects the fishing-control policy for the whole run.
	Control Control
}

// Grid groups the spatial inputs of a run.
type Grid struct {
	// AreaSize is the relative size of each area (length nareas, > 0).
	AreaSize []float64

	// Movement holds one (maxage × nareas × nareas) cube per year:
	// Movement[y].At(age, from, to) is the fraction of age-`age`
	// individuals in `from` that end up in `to` after the timestep.
	Movement []*tensor.Cube
}

// Trajectory is the full output of ProjectYears: eight cubes, each shaped
// (maxage × pyears × nareas), filled strictly in increasing year order.
type Trajectory struct {
	// N is numbers-at-age by year and area.
	N *tensor.Cube

	// B is biomass-at-age (N × weight).
	B *tensor.Cube

	// SSN is spawning numbers (N × maturity).
	SSN *tensor.Cube

	// SB is spawning biomass (N × weight × maturity).
	SB *tensor.Cube

	// VB is vulnerable biomass (N × weight × vulnerability).
	VB *tensor.Cube

	// FM is fishing mortality-at-age.
	FM *tensor.Cube

	// FMRet is retained fishing mortality-at-age.
	FMRet *tensor.Cube

	// Z is total mortality-at-age (M + FM).
	Z *tensor.Cube
}

// SSBByArea returns the spawning biomass summed over ages for each area
// in the given year. Panics are avoided: an out-of-range year yields nil.
func (t *Trajectory) SSBByArea(year int) []float64 {
	maxage, pyears, nareas := t.SB.Dims()
	if year < 0 || year >= pyears {
		return nil
	}
	out := make([]float64, nareas)
	data := t.SB.Data()
	for age := 0; age < maxage; age++ {
		base := t.SB.Offset(age, year, 0)
		for area := 0; area < nareas; area++ {
			out[area] += data[base+area]
		}
	}

	return out
}

// TotalBiomass returns biomass summed over ages and areas for the given
// year, or 0 for an out-of-range year.
func (t *Trajectory) TotalBiomass(year int) float64 {
	maxage, pyears, nareas := t.B.Dims()
	if year < 0 || year >= pyears {
		return 0
	}
	var s float64
	data := t.B.Data()
	for age := 0; age < maxage; age++ {
		base := t.B.Offset(age, year, 0)
		for area := 0; area < nareas; area++ {
			s += data[base+area]
		}
	}

	return s
}
