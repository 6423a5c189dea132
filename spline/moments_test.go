package spline_test

import (
	"testing"

	"github.com/katalvlaran/splinekit/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMoments_NaturalEndsAreZero verifies the Natural condition pins both
// end moments to zero while interior moments are generally nonzero.
func TestMoments_NaturalEndsAreZero(t *testing.T) {
	s := spline.New()
	require.NoError(t, s.Set(squareKnots, 4, 2))

	m := s.Moments()
	require.Len(t, m, 8)
	assert.Zero(t, m[0], "left end moment x must be zero under Natural")
	assert.Zero(t, m[1], "left end moment y must be zero under Natural")
	assert.Zero(t, m[6], "right end moment x must be zero under Natural")
	assert.Zero(t, m[7], "right end moment y must be zero under Natural")
	assert.NotZero(t, m[2], "interior moments must be nonzero for a curved knot set")
}

// TestMoments_PeriodicHandSolved anchors the cyclic path to a hand-solved
// 1-D problem: knots (0, 1, 0) with Periodic ends give the system
//
//	| 4 1 1 |        |  6  |
//	| 1 4 1 | · m =  | -12 |   ⇒   m = (2, -4, 2).
//	| 1 1 4 |        |  6  |
func TestMoments_PeriodicHandSolved(t *testing.T) {
	s := spline.New(spline.WithBoundary(spline.Periodic, spline.Periodic))
	require.NoError(t, s.Set([]float64{0, 1, 0}, 3, 1))

	m := s.Moments()
	require.Len(t, m, 3)
	assert.InDelta(t, 2.0, m[0], 1e-9)
	assert.InDelta(t, -4.0, m[1], 1e-9)
	assert.InDelta(t, 2.0, m[2], 1e-9)
}

// TestMoments_PeriodicContinuity verifies value and first-derivative
// continuity across the wrap point for a closed curve (first knot equal
// to last knot). Derivatives are compared via one-sided differences.
func TestMoments_PeriodicContinuity(t *testing.T) {
	// Closed diamond: the last knot repeats the first.
	closed := []float64{1, 0, 0, 1, -1, 0, 0, -1, 1, 0}
	s := spline.New(spline.WithBoundary(spline.Periodic, spline.Periodic))
	require.NoError(t, s.Set(closed, 5, 2))

	start, err := s.Eval(0)
	require.NoError(t, err)
	end, err := s.Eval(1)
	require.NoError(t, err)
	for j := 0; j < 2; j++ {
		assert.InDelta(t, start[j], end[j], 1e-9, "closed curve must meet itself (dim %d)", j)
	}

	const h = 1e-5
	after, err := s.Eval(h)
	require.NoError(t, err)
	before, err := s.Eval(1 - h)
	require.NoError(t, err)
	for j := 0; j < 2; j++ {
		dStart := (after[j] - start[j]) / h
		dEnd := (end[j] - before[j]) / h
		assert.InDelta(t, dStart, dEnd, 1e-3, "wrap derivative must match (dim %d)", j)
	}
}

// TestMoments_DimensionIndependence verifies a D-dimensional solve equals
// D independent 1-dimensional solves over the per-dimension scalars.
func TestMoments_DimensionIndependence(t *testing.T) {
	joint := spline.New()
	require.NoError(t, joint.Set(squareKnots, 4, 2))
	jm := joint.Moments()

	for dim := 0; dim < 2; dim++ {
		scalars := make([]float64, 4)
		for i := 0; i < 4; i++ {
			scalars[i] = squareKnots[i*2+dim]
		}
		solo := spline.New()
		require.NoError(t, solo.Set(scalars, 4, 1))
		sm := solo.Moments()

		for i := 0; i < 4; i++ {
			assert.Equal(t, sm[i], jm[i*2+dim],
				"dimension %d knot %d: joint and solo moments must be identical", dim, i)
		}
	}
}

// TestMoments_Determinism verifies two identical Sets produce
// bit-identical moment arrays.
func TestMoments_Determinism(t *testing.T) {
	s := spline.New(
		spline.WithBoundary(spline.Hermite, spline.Periodic),
		spline.WithLeftTangent([]float64{0, -1}),
	)
	require.NoError(t, s.Set(squareKnots, 4, 2))
	first := s.Moments()

	require.NoError(t, s.Set(squareKnots, 4, 2))
	second := s.Moments()

	assert.Equal(t, first, second, "identical rebinds must be bit-identical")
}

// TestMoments_StraightLineIsDegenerate verifies collinear equispaced
// knots yield the zero moment vector under Natural ends — a straight
// line, not an error.
func TestMoments_StraightLineIsDegenerate(t *testing.T) {
	line := []float64{0, 0, 1, 1, 2, 2, 3, 3}
	s := spline.New()
	require.NoError(t, s.Set(line, 4, 2))

	for i, v := range s.Moments() {
		assert.Zero(t, v, "straight-line moment %d must be zero", i)
	}

	mid, err := s.Eval(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, mid[0], 1e-9, "midpoint of the straight line")
	assert.InDelta(t, 1.5, mid[1], 1e-9)
}

// TestMoments_TwoPointPeriodic verifies the smallest periodic problem
// (N=2, first knot equal to last) degenerates to a constant-free straight
// segment rather than failing.
func TestMoments_TwoPointPeriodic(t *testing.T) {
	s := spline.New(spline.WithBoundary(spline.Periodic, spline.Periodic))
	require.NoError(t, s.Set([]float64{1, 2, 1, 2}, 2, 2))

	for i, v := range s.Moments() {
		assert.InDelta(t, 0.0, v, 1e-9, "moment %d", i)
	}
	mid, err := s.Eval(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, mid[0], 1e-9)
	assert.InDelta(t, 2.0, mid[1], 1e-9)
}
