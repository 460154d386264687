package dynamics

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/popdyn/tensor"
)

// ProjectYears — multi-year population projection driver.
//
// Description:
//
//	Allocates all (maxage × pyears × nareas) output cubes, seeds year 0
//	from init, and advances the population one year at a time through
//	ProjectOneStep's kernel. Per year it:
//	  1. derives B/SSN/SB/VB snapshots by combining N with the year's
//	     weight/maturity/vulnerability tables;
//	  2. allocates fishing effort across areas proportionally to
//	     vulnerable biomass raised to the spatial-targeting exponent;
//	  3. masks the allocation by the year's closures and redistributes
//	     closed-area effort among open areas (no mask in year 0);
//	  4. computes fishing mortality-at-age per the control policy
//	     (effort × catchability, apical F, or none);
//	  5. clamps F and Fret elementwise at MaxF;
//	  6. under UnfishedControl, re-equilibrates per-area recruitment
//	     toward the target unfished spatial distribution (see
//	     unfishedState.update).
//
// Geometry is taken from init: maxage = init.Rows(), nareas = init.Cols().
// recDevs must carry at least pyears+maxage entries; the transition out of
// year yr consumes recDevs[yr+maxage].
//
// Determinism: per-year iteration is strictly sequential — year y+1
// depends only on year y and earlier spawning biomass. Future-year entries
// start at zero and are filled in increasing year order only.
//
// Complexity: Time O(pyears · maxage · nareas²), Space O(maxage · pyears · nareas).
//
// Errors: boundary violations (ErrNilInput, ErrDimensionMismatch,
// ErrNaNInf, ErrNegativeRate, ErrUnknownSRR, ErrUnknownControl,
// ErrShortRecDevs) and run-time invalid-input conditions
// (ErrPlusGroupMortality, ErrAllAreasClosed, ErrVanishedBiomass). On any
// error no Trajectory is returned.
func ProjectYears(init *tensor.Matrix, pyears int, stock Stock, fleet Fleet,
	grid Grid, recDevs []float64, unfishedSSB float64) (*Trajectory, error) {
	if err := validateRun(init, pyears, stock, fleet, grid, recDevs, unfishedSSB); err != nil {
		return nil, err
	}

	d := newRun(init, pyears, stock, fleet, grid, recDevs, unfishedSSB)

	// Year 0: seed numbers, derive biomass snapshots, apply the initial
	// fishing pattern (no closure mask in year 0).
	d.seedInitialYear(init)
	if err := d.spatialAllocation(0); err != nil {
		return nil, err
	}
	d.fishingMortality(0)
	d.totalMortality(0)

	// Year transitions, strictly forward.
	for yr := 0; yr < pyears-1; yr++ {
		if err := d.advance(yr); err != nil {
			return nil, err
		}
	}

	return d.traj, nil
}

// run carries the working state of one projection. Arrays are owned
// exclusively by the run for its duration; nothing is shared across runs.
type run struct {
	maxage, pyears, nareas int

	stock Stock
	fleet Fleet
	grid  Grid

	recDevs []float64
	traj    *Trajectory

	// Evolving copies of the per-area recruitment parameters. UnfishedControl
	// mutates these through the feedback; the caller's slices stay intact.
	r0a, recA, recB []float64
	feedback        *unfishedState

	// Scratch reused across years.
	ncurr, zcurr, pre, nnext *tensor.Matrix
	fishdist, masked, sb     []float64
}

// newRun allocates the trajectory cubes and scratch space. Shapes were
// validated by the caller; tensor constructors cannot fail here.
func newRun(init *tensor.Matrix, pyears int, stock Stock, fleet Fleet,
	grid Grid, recDevs []float64, unfishedSSB float64) *run {
	maxage, nareas := init.Rows(), init.Cols()
	newCube := func() *tensor.Cube {
		c, _ := tensor.NewCube(maxage, pyears, nareas)
		return c
	}
	newMat := func() *tensor.Matrix {
		m, _ := tensor.NewMatrix(maxage, nareas)
		return m
	}

	d := &run{
		maxage: maxage, pyears: pyears, nareas: nareas,
		stock: stock, fleet: fleet, grid: grid,
		recDevs: recDevs,
		traj: &Trajectory{
			N: newCube(), B: newCube(), SSN: newCube(), SB: newCube(),
			VB: newCube(), FM: newCube(), FMRet: newCube(), Z: newCube(),
		},
		r0a:      append([]float64(nil), stock.R0...),
		recA:     append([]float64(nil), stock.RecA...),
		recB:     append([]float64(nil), stock.RecB...),
		ncurr:    newMat(),
		zcurr:    newMat(),
		pre:      newMat(),
		nnext:    newMat(),
		fishdist: make([]float64, nareas),
		masked:   make([]float64, nareas),
		sb:       make([]float64, nareas),
	}
	if fleet.Control == UnfishedControl {
		d.feedback = newUnfishedState(stock.Steepness, stock.SSBpR,
			d.r0a, d.recA, d.recB, unfishedSSB)
	}

	return d
}

// seedInitialYear writes init into year 0 of N and derives the year-0
// biomass snapshots.
func (d *run) seedInitialYear(init *tensor.Matrix) {
	nd := d.traj.N.Data()
	id := init.Data()
	for age := 0; age < d.maxage; age++ {
		base := d.traj.N.Offset(age, 0, 0)
		copy(nd[base:base+d.nareas], id[age*d.nareas:(age+1)*d.nareas])
	}
	d.deriveYear(0)
}

// deriveYear combines year y's numbers with that year's biological-rate
// tables: B = N·w, SSN = N·mat, SB = N·w·mat, VB = N·w·v. Derived arrays
// are never independently mutated.
func (d *run) deriveYear(y int) {
	t := d.traj
	nd, bd, ssnd, sbd, vbd := t.N.Data(), t.B.Data(), t.SSN.Data(), t.SB.Data(), t.VB.Data()
	wd, matd, vd := d.stock.Weight.Data(), d.stock.Maturity.Data(), d.fleet.Vulnerability.Data()

	for age := 0; age < d.maxage; age++ {
		w := wd[age*d.pyears+y]
		mat := matd[age*d.pyears+y]
		v := vd[age*d.pyears+y]
		base := t.N.Offset(age, y, 0)
		for area := 0; area < d.nareas; area++ {
			n := nd[base+area]
			bd[base+area] = n * w
			ssnd[base+area] = n * mat
			sbd[base+area] = n * w * mat
			vbd[base+area] = n * w * v
		}
	}
}

// spatialAllocation computes fishdist[area] = VB[area]^τ / Σ VB^τ from
// year y's vulnerable biomass. Under UnfishedControl no effort exists to
// allocate and the step is skipped entirely.
// Errors: ErrVanishedBiomass when the power-weighted total is zero.
func (d *run) spatialAllocation(y int) error {
	if d.fleet.Control == UnfishedControl {
		return nil
	}
	vbd := d.traj.VB.Data()
	for area := 0; area < d.nareas; area++ {
		var s float64
		for age := 0; age < d.maxage; age++ {
			s += vbd[d.traj.VB.Offset(age, y, area)]
		}
		d.fishdist[area] = math.Pow(s, d.fleet.SpatTarget)
	}
	if _, ok := tensor.Normalize(d.fishdist); !ok {
		return validatorErrorf("run: spatial allocation", ErrVanishedBiomass)
	}

	return nil
}

// applyClosures masks fishdist by the openness row for maskYear and
// redistributes closed-area effort among open areas, preserving the total.
// The literal rescale is d1[a] * (fracE + (1-fracE)) / fracE with
// fracE = Σ mask·fishdist; it is undefined at fracE == 0, which is
// rejected as an invalid-input condition.
func (d *run) applyClosures(maskYear int) error {
	mpa := d.fleet.MPA.Data()
	row := mpa[maskYear*d.nareas : (maskYear+1)*d.nareas]
	for area, open := range row {
		d.masked[area] = open * d.fishdist[area]
	}
	fracE := floats.Sum(d.masked)
	if fracE == 0 {
		return validatorErrorf("run: closures", ErrAllAreasClosed)
	}
	for area := range d.fishdist {
		d.fishdist[area] = d.masked[area] * (fracE + (1 - fracE)) / fracE
	}

	return nil
}

// fishingMortality fills FM and FMRet for year y from the current fishdist
// under the control policy, clamping both at MaxF. UnfishedControl leaves
// both cubes at zero.
func (d *run) fishingMortality(y int) {
	var scale float64
	switch d.fleet.Control {
	case EffortControl:
		scale = d.fleet.Effort[y] * d.fleet.Catchability
	case ApicalFControl:
		scale = d.fleet.ApicalF
	case UnfishedControl:
		return
	}

	fmd, frd := d.traj.FM.Data(), d.traj.FMRet.Data()
	vd, rd := d.fleet.Vulnerability.Data(), d.fleet.Retention.Data()
	for age := 0; age < d.maxage; age++ {
		vul := vd[age*d.pyears+y]
		ret := rd[age*d.pyears+y]
		base := d.traj.FM.Offset(age, y, 0)
		for area := 0; area < d.nareas; area++ {
			f := scale * d.fishdist[area] / d.grid.AreaSize[area]
			fmd[base+area] = f * vul
			frd[base+area] = f * ret
		}
		tensor.ClampMax(fmd[base:base+d.nareas], d.fleet.MaxF)
		tensor.ClampMax(frd[base:base+d.nareas], d.fleet.MaxF)
	}
}

// totalMortality fills Z for year y: Z = M + FM (FM is all zero under
// UnfishedControl, so Z reduces to natural mortality).
func (d *run) totalMortality(y int) {
	zd, fmd := d.traj.Z.Data(), d.traj.FM.Data()
	md := d.stock.M.Data()
	for age := 0; age < d.maxage; age++ {
		m := md[age*d.pyears+y]
		base := d.traj.Z.Offset(age, y, 0)
		for area := 0; area < d.nareas; area++ {
			zd[base+area] = m + fmd[base+area]
		}
	}
}

// advance performs the yr → yr+1 transition: project numbers forward,
// derive the new year's snapshots, then set that year's fishing pattern
// (or run the unfished feedback).
func (d *run) advance(yr int) error {
	// Spawning biomass driving recruitment: realized SSB of year yr, except
	// under UnfishedControl from year 1 on, where the feedback's rescaled
	// per-area target takes over.
	copy(d.sb, d.traj.SSBByArea(yr))
	if yr > 0 && d.feedback != nil {
		copy(d.sb, d.feedback.ssb0a)
	}

	d.loadYear(yr)
	if err := projectStep(d.nnext, d.pre, d.sb, d.ncurr, d.zcurr,
		d.recDevs[yr+d.maxage], d.stock.Steepness, d.r0a, d.stock.SSBpR,
		d.recA, d.recB, d.grid.Movement[yr], d.stock.SRR, d.stock.PlusGroup); err != nil {
		return err
	}
	d.storeYear(yr + 1)
	d.deriveYear(yr + 1)

	if d.feedback != nil {
		// Unfished reference: no fishing mortality, recruitment parameters
		// re-equilibrated toward the target spatial distribution.
		d.totalMortality(yr + 1)
		return d.feedback.update(d.traj.SSBByArea(yr+1), d.traj.SSBByArea(yr))
	}

	if err := d.spatialAllocation(yr + 1); err != nil {
		return err
	}
	// Historical closures use the openness row of the departing year.
	if err := d.applyClosures(yr); err != nil {
		return err
	}
	d.fishingMortality(yr + 1)
	d.totalMortality(yr + 1)

	return nil
}

// loadYear copies year yr of N and Z into the step scratch matrices.
func (d *run) loadYear(yr int) {
	nd, zd := d.traj.N.Data(), d.traj.Z.Data()
	nc, zc := d.ncurr.Data(), d.zcurr.Data()
	for age := 0; age < d.maxage; age++ {
		base := d.traj.N.Offset(age, yr, 0)
		copy(nc[age*d.nareas:(age+1)*d.nareas], nd[base:base+d.nareas])
		copy(zc[age*d.nareas:(age+1)*d.nareas], zd[base:base+d.nareas])
	}
}

// storeYear writes the freshly projected numbers into year yr of N.
func (d *run) storeYear(yr int) {
	nd := d.traj.N.Data()
	nn := d.nnext.Data()
	for age := 0; age < d.maxage; age++ {
		base := d.traj.N.Offset(age, yr, 0)
		copy(nd[base:base+d.nareas], nn[age*d.nareas:(age+1)*d.nareas])
	}
}
