package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/popdyn/tensor"
)

// TestClampMax verifies that values above the cap land exactly on the cap
// and values at or below it are untouched.
func TestClampMax(t *testing.T) {
	x := []float64{0.1, 2.9, 0.8, 0.8001, -3}
	tensor.ClampMax(x, 0.8)
	assert.Equal(t, []float64{0.1, 0.8, 0.8, 0.8, -3}, x)
}

// TestNormalize covers the happy path (unit total, reported pre-scale sum)
// and the degenerate all-zero case (untouched, ok=false).
func TestNormalize(t *testing.T) {
	x := []float64{1, 3}
	total, ok := tensor.Normalize(x)
	assert.True(t, ok)
	assert.Equal(t, 4.0, total)
	assert.InDelta(t, 0.25, x[0], 1e-15)
	assert.InDelta(t, 0.75, x[1], 1e-15)

	zero := []float64{0, 0, 0}
	total, ok = tensor.Normalize(zero)
	assert.False(t, ok, "zero total is degenerate")
	assert.Equal(t, 0.0, total)
	assert.Equal(t, []float64{0, 0, 0}, zero, "degenerate input stays untouched")
}
