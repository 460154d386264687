// Package recdev generates lognormal recruitment-deviation series for
// stochastic population projections.
//
// 🚀 What is recdev?
//
//	Recruitment process error for the popdyn engine: a series of
//	multiplicative deviations dev_t applied to the stock-recruit
//	prediction each year. Deviations are lognormal with the standard
//	bias correction (so E[dev] = 1), optionally first-order
//	autocorrelated on the log scale:
//	  ε_t = ρ·ε_{t-1} + √(1-ρ²)·η_t,  η_t ~ N(0, σ_R)
//	  dev_t = exp(ε_t − σ_R²/2)
//
// ✨ Key properties:
//   - Deterministic: identical Config (including Seed) yields an identical
//     series — runs are exactly reproducible
//   - Stationary: the √(1-ρ²) innovation scaling keeps marginal variance
//     at σ_R² for any admissible ρ
//   - σ_R = 0 degenerates to an all-ones series (a deterministic run)
//
// ⚙️ Usage:
//
//	cfg := recdev.DefaultConfig()
//	cfg.SigmaR = 0.6
//	cfg.Seed = 42
//	devs, err := recdev.Series(pyears+maxage, cfg)
//
// The driver consumes pyears+maxage entries, so generate at least that many.
package recdev
