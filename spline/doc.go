// Package spline interpolates ordered multi-dimensional point sequences
// with parametric cubic splines, parametrized uniformly over [0,1].
//
// 🚀 What is a parametric cubic spline?
//
//	Given N knots in D dimensions, the spline threads a piecewise-cubic
//	curve through every knot with continuous first and second
//	derivatives.  Common uses include:
//	  • Camera & robot trajectory smoothing
//	  • Path interpolation for animation and games
//	  • Signal resampling & curve reconstruction from samples
//
// ✨ Key features:
//   - Natural, Hermite and Periodic boundary conditions, independently
//     selectable per end (mix freely)
//   - closed curves via Periodic ends — solved with the cyclic variant
//     of the tridiagonal moment system
//   - single-point Eval, allocation-free EvalInto, and batch EvalAll
//   - fixed or growable moment storage (choose via StorageMode)
//   - knots borrowed zero-copy from the caller, or owned via
//     WithCopiedPoints
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/splinekit/spline"
//
//	s := spline.New(
//	  spline.WithBoundary(spline.Hermite, spline.Hermite),
//	  spline.WithTangents([]float64{0, -1}, []float64{-1, 0}),
//	)
//
//	// 4 knots in 2D, flat row-major: (1,0) (-1,0) (0,1) (0,-1)
//	knots := []float64{1, 0, -1, 0, 0, 1, 0, -1}
//	if err := s.Set(knots, 4, 2); err != nil {
//	  // handle ErrTooFewPoints, ErrUnsupportedBoundary, ...
//	}
//
//	p, _ := s.Eval(0.5) // point halfway along the curve
//
// How it works:
//
//	Set assembles one banded equation per knot — curvature continuity in
//	the interior, boundary encoding at the ends — and solves for the
//	moments (second derivatives at the knots) with the tridiag package.
//	Eval then blends the enclosing segment's two knots and two moments in
//	closed form.  A Periodic end couples the first and last rows, turning
//	the system cyclic; the solver handles that with a rank-one correction
//	at the same O(N) cost.
//
// Performance:
//
//   - Set:  O(N·D) time, one moment buffer of N·D float64
//   - Eval: O(D) time, zero allocations via EvalInto
//
// The knot buffer passed to Set is borrowed: it must remain valid and
// unmodified until the next Set (or forever, if the spline stays in
// use). Use WithCopiedPoints to lift that requirement at the cost of one
// copy per Set.
//
// See examples in example_test.go and the solver internals in
// splinekit/tridiag.
package spline
