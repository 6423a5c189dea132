// Package splinekit interpolates ordered multi-dimensional point sequences
// with smooth parametric cubic splines — from the banded moment solver up
// to closed-form evaluation at any parameter in [0,1].
//
// 🚀 What is splinekit?
//
//	A small, pure-Go numerical library that brings together:
//		• Parametric cubic splines over N knots in D dimensions
//		• Natural, Hermite and Periodic (closed-curve) boundary conditions
//		• An O(N) tridiagonal solver, including the cyclic variant via a
//		  rank-one (Sherman–Morrison) correction
//		• Single-point and batch evaluation with caller-provided buffers
//
// ✨ Why choose splinekit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable numerics – deterministic, allocation-conscious kernels
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – functional options for boundaries, tangents and storage
//
// Under the hood, everything is organized under two subpackages:
//
//	spline/  — boundary-condition encoding, moment computation, evaluation
//	tridiag/ — Thomas algorithm & cyclic-tridiagonal (Sherman–Morrison) solver
//
// Quick ASCII example:
//
//	    P1────╮
//	   ╱       ╲
//	  P0        P2      a smooth curve threaded through every knot,
//	   ╲       ╱        parametrized uniformly over [0,1].
//	    ╰────P3
//
// Dive into spline/doc.go for the interpolation walkthrough and
// tridiag/doc.go for the solver internals.
//
//	go get github.com/katalvlaran/splinekit
package splinekit
