// Package dynamics computes the year-by-year trajectory of an age- and
// area-structured fish population under fishing and movement.
//
// 🚀 What is dynamics?
//
//	The numerical engine behind a stock-assessment / management-strategy-
//	evaluation toolchain. Two operations, consumed in dependency order:
//	  • ProjectOneStep — advance numbers-at-age one year within each area:
//	    recruitment (Beverton-Holt or Ricker), survival under total
//	    mortality, optional plus-group accumulation, then spatial
//	    redistribution through a per-age movement tensor. Stateless.
//	  • ProjectYears — allocate all (age × year × area) output cubes,
//	    derive per-year fishing mortality from effort×catchability or an
//	    apical F, allocate effort across areas by vulnerable biomass,
//	    apply closures and the maxF ceiling, and drive ProjectOneStep
//	    across every year transition. In the unfished-reference mode it
//	    re-equilibrates per-area recruitment toward a target spatial
//	    distribution via an explicit per-year feedback update.
//
// ✨ Contract highlights:
//   - Fail fast: every input validated on entry; a run either completes
//     fully or errors before any output is produced
//   - Strictly sequential years: year y+1 depends only on year y — this is
//     a correctness dependency, not an optimization choice
//   - Deterministic: fixed loop orders, no randomness, no shared state
//     across runs
//
// ⚙️ Usage:
//
//	traj, err := dynamics.ProjectYears(init, pyears, stock, fleet, grid,
//		recDevs, unfishedSSB)
//	if err != nil {
//		// errors.Is(err, dynamics.ErrDimensionMismatch), etc.
//	}
//	ssb := traj.SSBByArea(pyears - 1)
//
// All arrays are owned exclusively by the driver for the duration of one
// run; input parameter slices are copied before any mutation (the
// unfished-reference mode evolves its own copies of R0/Ricker parameters).
package dynamics
