package spline_test

import (
	"testing"

	"github.com/katalvlaran/splinekit/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStorage_FixedRejectsOversizedCurve verifies StorageFixed caps the
// moment buffer at the capacity hint, before any state changes.
func TestStorage_FixedRejectsOversizedCurve(t *testing.T) {
	s := spline.New(
		spline.WithStorageMode(spline.StorageFixed),
		spline.WithCapacityHint(4), // room for 2 knots × 2 dims only
	)

	err := s.Set(squareKnots, 4, 2) // needs 8
	assert.ErrorIs(t, err, spline.ErrStorageExceeded, "oversized curve must error")
	assert.False(t, s.Ready(), "nothing must be bound after rejection")

	// A curve that fits binds normally.
	require.NoError(t, s.Set(squareKnots, 2, 2))
	assert.Equal(t, 2, s.NumPoints())
}

// TestStorage_FixedKeepsPriorCurveOnOverflow verifies an overflowing
// rebind leaves the previously bound curve evaluable.
func TestStorage_FixedKeepsPriorCurveOnOverflow(t *testing.T) {
	s := spline.New(
		spline.WithStorageMode(spline.StorageFixed),
		spline.WithCapacityHint(8),
	)
	require.NoError(t, s.Set(squareKnots, 4, 2))

	big := make([]float64, 10*2)
	err := s.Set(big, 10, 2)
	require.ErrorIs(t, err, spline.ErrStorageExceeded)

	assertCurveMatches(t, s, elevenSteps, naturalReference, 1e-3)
}

// TestStorage_ModesAgree verifies all three backing strategies produce
// identical curves for the same inputs.
func TestStorage_ModesAgree(t *testing.T) {
	modes := map[string]spline.StorageMode{
		"auto":    spline.StorageAuto,
		"fixed":   spline.StorageFixed,
		"dynamic": spline.StorageDynamic,
	}
	var reference []float64
	for name, mode := range modes {
		s := spline.New(
			spline.WithStorageMode(mode),
			spline.WithCapacityHint(8),
		)
		require.NoError(t, s.Set(squareKnots, 4, 2), "mode %s", name)
		m := s.Moments()
		if reference == nil {
			reference = m

			continue
		}
		assert.Equal(t, reference, m, "mode %s must match the other backings", name)
	}
}

// TestStorage_ReuseAcrossRebinds verifies a spline instance can shrink
// and grow across Sets, with the moment length tracking numPoints·numDims.
func TestStorage_ReuseAcrossRebinds(t *testing.T) {
	s := spline.New(spline.WithCapacityHint(8))

	require.NoError(t, s.Set(squareKnots, 4, 2))
	require.Len(t, s.Moments(), 8)

	require.NoError(t, s.Set([]float64{0, 1, 4}, 3, 1))
	require.Len(t, s.Moments(), 3)
	assert.Equal(t, 1, s.NumDims())

	// Growing beyond the hint is fine under the default StorageAuto.
	big := make([]float64, 16*3)
	require.NoError(t, s.Set(big, 16, 3))
	require.Len(t, s.Moments(), 48)
}
