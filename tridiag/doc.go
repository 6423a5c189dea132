// Package tridiag solves tridiagonal and cyclic-tridiagonal linear
// systems in O(N), with support for multiple right-hand-side columns
// sharing one coefficient matrix.
//
// 🚀 What is tridiag?
//
//	A banded system T·x = d couples each unknown only to its immediate
//	neighbours, so Gaussian elimination collapses to a single forward
//	sweep plus a back-substitution — the Thomas algorithm.  Such systems
//	appear in:
//	  • Cubic-spline moment computation (curvature continuity)
//	  • 1-D heat/diffusion implicit time stepping
//	  • Cross-sectional smoothing & penalized regression
//
// ✨ Key features:
//   - plain mode: strict tridiagonal solve, O(N) time, O(1) extra memory
//   - cyclic mode: nonzero wrap-around corners handled by a rank-one
//     (Sherman–Morrison) correction — two banded sweeps, no dense math
//   - multi-dimensional right-hand sides solved in one pass, row-major
//   - zero pivots surface as ErrZeroPivot instead of a NaN cascade
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/splinekit/tridiag"
//
//	sys := &tridiag.System{
//	  A:    []float64{0, 1, 1},      // sub-diagonal (A[0] unused unless cyclic)
//	  B:    []float64{2, 2, 2},      // main diagonal
//	  C:    []float64{1, 1, 0},      // super-diagonal (C[N-1] unused unless cyclic)
//	  D:    []float64{4, 8, 8},      // right-hand side, becomes the solution
//	  Dims: 1,
//	}
//	if err := tridiag.Solve(sys); err != nil {
//	  // handle ErrNilSystem, ErrSizeMismatch or ErrZeroPivot
//	}
//	// sys.D now holds x
//
// Cyclic detection: the system is treated as cyclic exactly when
// A[0] != 0 or C[N-1] != 0; those entries are read as the wrap-around
// corners T[0][N-1] and T[N-1][0].
//
// Performance:
//
//   - Time:   O(N·Dims)
//   - Memory: O(1) extra (plain) or O(N) for the correction column (cyclic)
//
// The solve is destructive: A, B, C and D are overwritten.  Callers that
// need the coefficients afterwards must copy them first.
package tridiag
