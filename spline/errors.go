// SPDX-License-Identifier: MIT
// Package spline: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// spline package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on user-triggered conditions.

package spline

import "errors"

var (
	// ErrTooFewPoints indicates fewer than two knots were supplied.
	ErrTooFewPoints = errors.New("spline: at least two points are required")

	// ErrBadDimension indicates a non-positive number of dimensions.
	ErrBadDimension = errors.New("spline: number of dimensions must be positive")

	// ErrBadPointCount indicates the flat point buffer is shorter than
	// numPoints*numDims values.
	ErrBadPointCount = errors.New("spline: point buffer shorter than numPoints*numDims")

	// ErrRaggedPoints indicates SetPoints received rows of differing lengths.
	ErrRaggedPoints = errors.New("spline: all points must share one dimensionality")

	// ErrUnsupportedBoundary indicates a boundary condition with no encoder
	// logic (NotAKnot, or an out-of-range value). It is rejected outright
	// rather than silently falling back to Natural.
	ErrUnsupportedBoundary = errors.New("spline: unsupported boundary condition")

	// ErrBadTangent indicates a supplied tangent whose length differs from
	// the number of dimensions.
	ErrBadTangent = errors.New("spline: tangent length must equal numDims")

	// ErrStorageExceeded indicates a StorageFixed spline was asked to hold
	// more moments than its capacity hint allows.
	ErrStorageExceeded = errors.New("spline: fixed storage capacity exceeded")

	// ErrNotReady indicates Eval was called before a successful Set.
	ErrNotReady = errors.New("spline: no curve bound; call Set first")

	// ErrShortBuffer indicates a caller-provided output buffer is too small.
	ErrShortBuffer = errors.New("spline: output buffer too small")
)
