package tensor_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/popdyn/tensor"
)

// TestNewCube_InvalidDimensions verifies that any non-positive extent is
// rejected with ErrInvalidDimensions.
func TestNewCube_InvalidDimensions(t *testing.T) {
	for _, dims := range [][3]int{{0, 2, 2}, {2, 0, 2}, {2, 2, 0}, {-1, 1, 1}} {
		_, err := tensor.NewCube(dims[0], dims[1], dims[2])
		assert.ErrorIs(t, err, tensor.ErrInvalidDimensions, "dims %v must error", dims)
	}
}

// TestCube_AtSet covers round trips, bounds on all three axes, and the
// finite-value policy.
func TestCube_AtSet(t *testing.T) {
	c, err := tensor.NewCube(2, 3, 4)
	require.NoError(t, err)

	require.NoError(t, c.Set(1, 2, 3, 7.5))
	v, err := c.At(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = c.At(2, 0, 0)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange, "axis 0 past the end")
	_, err = c.At(0, 3, 0)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange, "axis 1 past the end")
	_, err = c.At(0, 0, 4)
	assert.ErrorIs(t, err, tensor.ErrOutOfRange, "axis 2 past the end")
	assert.ErrorIs(t, c.Set(0, 0, -1, 1), tensor.ErrOutOfRange)

	assert.ErrorIs(t, c.Set(0, 0, 0, math.NaN()), tensor.ErrNaNInf)
	assert.ErrorIs(t, c.Set(0, 0, 0, math.Inf(-1)), tensor.ErrNaNInf)
}

// TestCube_OffsetLayout pins the row-major layout contract: Offset must
// agree with the documented formula (i*y + j)*z + k, and Data must expose
// the same storage At reads.
func TestCube_OffsetLayout(t *testing.T) {
	c, err := tensor.NewCube(2, 3, 4)
	require.NoError(t, err)
	require.NoError(t, c.Set(1, 2, 3, 42))

	idx := c.Offset(1, 2, 3)
	assert.Equal(t, (1*3+2)*4+3, idx, "documented layout formula")
	assert.Equal(t, 42.0, c.Data()[idx], "Data shares storage with At/Set")
}

// TestCube_CloneFillSum covers the bulk helpers and deep-copy semantics.
func TestCube_CloneFillSum(t *testing.T) {
	c, err := tensor.NewCube(2, 2, 2)
	require.NoError(t, err)
	c.Fill(0.5)
	assert.Equal(t, 4.0, c.Sum(), "8 cells × 0.5")

	clone := c.Clone()
	require.NoError(t, clone.Set(0, 0, 0, 100))
	v, _ := c.At(0, 0, 0)
	assert.Equal(t, 0.5, v, "original must be unaffected by clone writes")

	x, y, z := clone.Dims()
	assert.Equal(t, [3]int{2, 2, 2}, [3]int{x, y, z})
}
