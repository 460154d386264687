// Package popdyn is a deterministic numerical engine for age- and
// area-structured fish population dynamics under fishing and movement.
//
// 🚀 What is popdyn?
//
//	The annual projection core of a stock-assessment / management-strategy
//	toolchain: given biological rates (mortality, maturity, weight,
//	vulnerability), a stock-recruitment relationship and an exploitation
//	pattern, it produces full time series of numbers-, biomass- and
//	mortality-at-age by spatial area:
//	  • Single-step projector: recruitment → survival → plus-group → movement
//	  • Multi-year driver: effort- or apical-F-based fishing, spatial effort
//	    targeting, area closures, maxF ceiling, unfished-reference feedback
//	  • Lognormal recruitment-deviation series for stochastic runs
//
// ✨ Why choose popdyn?
//
//   - Fail-fast guarantees – every input is validated at the boundary;
//     a run either completes fully or errors before producing output
//   - Deterministic – fixed loop orders, no map iteration, no hidden state
//   - Dense storage – fixed-shape row-major tensors, cache-friendly indexing
//   - Pure Go – no cgo, minimal deps
//
// Under the hood, everything is organized under three subpackages:
//
//	dynamics/ — ProjectOneStep & ProjectYears: the projection engine
//	recdev/ — deterministic lognormal recruitment-deviation generator
//	tensor/ — dense row-major Matrix (2-D) and Cube (3-D) numeric storage
//
// Quick ASCII sketch of one annual step for a single area:
//
//	N₀ ◄─ SRR(SSB)·dev            then, per age, redistribute across
//	N₁ ◄─ N₀·e^(-Z₀)              areas via mov[age][from][to]:
//	N₂ ◄─ N₁·e^(-Z₁)              N'[age][to] = Σ_from N[age][from]·mov
//	N₊ ◄─ inflow/(1-e^(-Z₊))      (plus-group, if enabled)
//
// Dive into each package's doc.go for contracts, invariants and examples.
//
//	go get github.com/katalvlaran/popdyn
package popdyn
