package dynamics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/popdyn/dynamics"
	"github.com/katalvlaran/popdyn/tensor"
)

// Shared fixture geometry for driver tests: a reference scenario of
// 2 areas × 3 ages × 5 years at unfished equilibrium.
const (
	tMaxAge = 3
	tYears  = 5
	tAreas  = 2
	tM      = 0.2
	tR0     = 100.0
	tSteep  = 0.6
)

// fillMatrix builds a rows×cols matrix with every cell set to v.
func fillMatrix(t *testing.T, rows, cols int, v float64) *tensor.Matrix {
	t.Helper()
	m, err := tensor.NewMatrix(rows, cols)
	require.NoError(t, err)
	m.Fill(v)

	return m
}

// ageRows builds an (len(byAge) × years) rate table that is constant over
// years with the given per-age values.
func ageRows(t *testing.T, byAge []float64, years int) *tensor.Matrix {
	t.Helper()
	rows := make([][]float64, len(byAge))
	for age, v := range byAge {
		rows[age] = make([]float64, years)
		for y := range rows[age] {
			rows[age][y] = v
		}
	}
	m, err := tensor.FromRows(rows)
	require.NoError(t, err)

	return m
}

// identityMov builds a (maxage × nareas × nareas) movement cube with no
// inter-area transfer.
func identityMov(t *testing.T, maxage, nareas int) *tensor.Cube {
	t.Helper()
	c, err := tensor.NewCube(maxage, nareas, nareas)
	require.NoError(t, err)
	for age := 0; age < maxage; age++ {
		for a := 0; a < nareas; a++ {
			require.NoError(t, c.Set(age, a, a, 1))
		}
	}

	return c
}

// transitionMov builds a movement cube applying the same from×to
// transition matrix to every age.
func transitionMov(t *testing.T, maxage int, trans [][]float64) *tensor.Cube {
	t.Helper()
	nareas := len(trans)
	c, err := tensor.NewCube(maxage, nareas, nareas)
	require.NoError(t, err)
	for age := 0; age < maxage; age++ {
		for from, row := range trans {
			for to, frac := range row {
				require.NoError(t, c.Set(age, from, to, frac))
			}
		}
	}

	return c
}

// constSlice returns a length-n slice filled with v.
func constSlice(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// unfishedSSBpR is the spawning biomass per recruit of the fixture
// biology: maturity [0,1,1], weight 1, M = 0.2, no plus-group.
func unfishedSSBpR() float64 {
	return math.Exp(-tM) + math.Exp(-2*tM)
}

// equilibriumInit returns the fixture's unfished-equilibrium initial
// numbers: N[age][area] = R0 · exp(-M·age).
func equilibriumInit(t *testing.T) *tensor.Matrix {
	t.Helper()
	rows := make([][]float64, tMaxAge)
	for age := range rows {
		rows[age] = constSlice(tAreas, tR0*math.Exp(-tM*float64(age)))
	}
	m, err := tensor.FromRows(rows)
	require.NoError(t, err)

	return m
}

// baselineStock returns the fixture biology under Beverton-Holt with zero
// Ricker placeholders (required by shape, ignored by the relationship).
func baselineStock(t *testing.T) dynamics.Stock {
	t.Helper()

	return dynamics.Stock{
		M:         fillMatrix(t, tMaxAge, tYears, tM),
		Maturity:  ageRows(t, []float64{0, 1, 1}, tYears),
		Weight:    fillMatrix(t, tMaxAge, tYears, 1),
		Steepness: tSteep,
		R0:        constSlice(tAreas, tR0),
		SSBpR:     constSlice(tAreas, unfishedSSBpR()),
		RecA:      constSlice(tAreas, 0),
		RecB:      constSlice(tAreas, 0),
		SRR:       dynamics.BevertonHolt,
		PlusGroup: false,
	}
}

// baselineFleet returns a fully open, zero-effort effort-control fleet.
func baselineFleet(t *testing.T) dynamics.Fleet {
	t.Helper()

	return dynamics.Fleet{
		Vulnerability: fillMatrix(t, tMaxAge, tYears, 1),
		Retention:     fillMatrix(t, tMaxAge, tYears, 1),
		Effort:        constSlice(tYears, 0),
		Catchability:  0,
		ApicalF:       0,
		SpatTarget:    1,
		MaxF:          0.8,
		MPA:           fillMatrix(t, tYears, tAreas, 1),
		Control:       dynamics.EffortControl,
	}
}

// baselineGrid returns unit areas with identity movement every year.
func baselineGrid(t *testing.T) dynamics.Grid {
	t.Helper()
	mov := make([]*tensor.Cube, tYears)
	for y := range mov {
		mov[y] = identityMov(t, tMaxAge, tAreas)
	}

	return dynamics.Grid{
		AreaSize: constSlice(tAreas, 1),
		Movement: mov,
	}
}

// baselineDevs returns a unit recruitment-deviation series long enough
// for the fixture run.
func baselineDevs() []float64 {
	return constSlice(tYears+tMaxAge, 1)
}
