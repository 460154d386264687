package recdev_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/popdyn/recdev"
)

// TestSeries_Validation drives the boundary checks table-style.
func TestSeries_Validation(t *testing.T) {
	cases := []struct {
		name string
		n    int
		cfg  recdev.Config
		want error
	}{
		{"zero length", 0, recdev.DefaultConfig(), recdev.ErrBadLength},
		{"negative length", -3, recdev.DefaultConfig(), recdev.ErrBadLength},
		{"negative sigma", 10, recdev.Config{SigmaR: -0.1, Seed: 1}, recdev.ErrBadSigma},
		{"NaN sigma", 10, recdev.Config{SigmaR: math.NaN(), Seed: 1}, recdev.ErrBadSigma},
		{"infinite sigma", 10, recdev.Config{SigmaR: math.Inf(1), Seed: 1}, recdev.ErrBadSigma},
		{"rho at unity", 10, recdev.Config{SigmaR: 0.6, AutoCorr: 1, Seed: 1}, recdev.ErrBadAutoCorr},
		{"rho below minus one", 10, recdev.Config{SigmaR: 0.6, AutoCorr: -1.5, Seed: 1}, recdev.ErrBadAutoCorr},
		{"NaN rho", 10, recdev.Config{SigmaR: 0.6, AutoCorr: math.NaN(), Seed: 1}, recdev.ErrBadAutoCorr},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := recdev.Series(tc.n, tc.cfg)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSeries_Deterministic: identical seeds reproduce identical series;
// different seeds do not.
func TestSeries_Deterministic(t *testing.T) {
	cfg := recdev.DefaultConfig()

	a, err := recdev.Series(50, cfg)
	require.NoError(t, err)
	b, err := recdev.Series(50, cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	cfg.Seed = 2
	c, err := recdev.Series(50, cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

// TestSeries_ZeroSigma: no process error collapses to a flat series of ones.
func TestSeries_ZeroSigma(t *testing.T) {
	out, err := recdev.Series(12, recdev.Config{SigmaR: 0, AutoCorr: 0.5, Seed: 7})
	require.NoError(t, err)
	require.Len(t, out, 12)
	for i, v := range out {
		assert.Equal(t, 1.0, v, "index %d", i)
	}
}

// TestSeries_Positive: lognormal deviations are strictly positive and finite.
func TestSeries_Positive(t *testing.T) {
	out, err := recdev.Series(500, recdev.Config{SigmaR: 1.2, AutoCorr: 0.4, Seed: 3})
	require.NoError(t, err)
	for i, v := range out {
		require.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d not finite", i)
		require.Greaterf(t, v, 0.0, "index %d not positive", i)
	}
}

// TestSeries_BiasCorrection: the −σ²/2 correction keeps the sample mean
// near 1, so a long deviation series neither inflates nor deflates
// recruitment on average.
func TestSeries_BiasCorrection(t *testing.T) {
	out, err := recdev.Series(4000, recdev.Config{SigmaR: 0.3, Seed: 11})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, stat.Mean(out, nil), 0.05)
}

// TestSeries_Autocorrelation: a strongly autocorrelated series keeps a
// high lag-1 correlation on the log scale, while an uncorrelated one
// stays near zero.
func TestSeries_Autocorrelation(t *testing.T) {
	lag1 := func(rho float64) float64 {
		out, err := recdev.Series(4000, recdev.Config{SigmaR: 0.6, AutoCorr: rho, Seed: 5})
		require.NoError(t, err)
		logs := make([]float64, len(out))
		for i, v := range out {
			logs[i] = math.Log(v)
		}
		return stat.Correlation(logs[:len(logs)-1], logs[1:], nil)
	}

	assert.Greater(t, lag1(0.9), 0.8)
	assert.InDelta(t, 0.0, lag1(0), 0.1)
}
