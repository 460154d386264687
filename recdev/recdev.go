package recdev

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrBadLength indicates a non-positive series length.
	ErrBadLength = errors.New("recdev: series length must be > 0")

	// ErrBadSigma indicates a negative or non-finite σ_R.
	ErrBadSigma = errors.New("recdev: sigmaR must be finite and >= 0")

	// ErrBadAutoCorr indicates an autocorrelation outside (-1, 1) or non-finite.
	ErrBadAutoCorr = errors.New("recdev: autocorrelation must be finite with |rho| < 1")
)

// Config parameterizes a recruitment-deviation series.
type Config struct {
	// SigmaR is the lognormal standard deviation of recruitment on the
	// log scale. Zero yields a deterministic all-ones series.
	SigmaR float64

	// AutoCorr is the AR(1) coefficient ρ on the log scale, |ρ| < 1.
	AutoCorr float64

	// Seed fixes the random source; identical seeds reproduce identical
	// series.
	Seed uint64
}

// DefaultConfig returns the documented defaults: moderate recruitment
// variability, no autocorrelation, seed 1.
func DefaultConfig() Config {
	return Config{SigmaR: 0.6, AutoCorr: 0, Seed: 1}
}

// Series generates n bias-corrected lognormal deviations under cfg.
// Stage 1 (Validate): n > 0, σ_R finite ≥ 0, |ρ| < 1.
// Stage 2 (Execute): draw AR(1) log-deviations, exponentiate with the
// −σ²/2 mean correction.
// Complexity: O(n) time and space.
func Series(n int, cfg Config) ([]float64, error) {
	if n <= 0 {
		return nil, ErrBadLength
	}
	if math.IsNaN(cfg.SigmaR) || math.IsInf(cfg.SigmaR, 0) || cfg.SigmaR < 0 {
		return nil, ErrBadSigma
	}
	if math.IsNaN(cfg.AutoCorr) || math.Abs(cfg.AutoCorr) >= 1 {
		return nil, ErrBadAutoCorr
	}

	out := make([]float64, n)
	if cfg.SigmaR == 0 {
		// Degenerate case: no process error, deterministic run.
		for i := range out {
			out[i] = 1
		}
		return out, nil
	}

	norm := distuv.Normal{
		Mu:    0,
		Sigma: cfg.SigmaR,
		Src:   rand.NewSource(cfg.Seed),
	}
	rho := cfg.AutoCorr
	scale := math.Sqrt(1 - rho*rho) // keeps marginal variance at σ_R²
	bias := 0.5 * cfg.SigmaR * cfg.SigmaR

	eps := norm.Rand()
	out[0] = math.Exp(eps - bias)
	for i := 1; i < n; i++ {
		eps = rho*eps + scale*norm.Rand()
		out[i] = math.Exp(eps - bias)
	}

	return out, nil
}
