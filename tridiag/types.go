// Package tridiag defines the system container and sentinel errors
// for the tridiag subpackage of github.com/katalvlaran/splinekit.
package tridiag

import "errors"

// Sentinel errors for tridiag operations.
var (
	// ErrNilSystem indicates a nil *System was passed to Solve.
	ErrNilSystem = errors.New("tridiag: system is nil")
	// ErrSizeMismatch indicates diagonal/right-hand-side lengths disagree,
	// or the system is empty, or Dims < 1.
	ErrSizeMismatch = errors.New("tridiag: diagonal and right-hand-side sizes disagree")
	// ErrZeroPivot indicates a zero pivot during the non-pivoting elimination.
	// Diagonally dominant systems never trigger this.
	ErrZeroPivot = errors.New("tridiag: zero pivot encountered")
)

// System describes T·x = d for a tridiagonal (optionally cyclic) matrix T.
//
// A, B and C hold the sub-, main- and super-diagonal, each of length N.
// A[0] and C[N-1] fall outside the band; when either is nonzero it is
// interpreted as the wrap-around corner T[0][N-1] resp. T[N-1][0] and the
// system is solved in cyclic mode.
//
// D is the right-hand side, stored row-major as N rows of Dims values
// (D[i*Dims+j] is row i, column j). Solve overwrites D with the solution
// and consumes the diagonals.
type System struct {
	A, B, C []float64 // diagonals, length N each
	D       []float64 // right-hand side, length N*Dims, row-major
	Dims    int       // number of right-hand-side columns, ≥ 1
}

// N returns the number of rows in the system.
func (s *System) N() int { return len(s.B) }

// validate checks structural consistency before any elimination runs.
func (s *System) validate() error {
	if s == nil {
		return ErrNilSystem
	}
	n := len(s.B)
	if n < 1 || s.Dims < 1 {
		return ErrSizeMismatch
	}
	if len(s.A) != n || len(s.C) != n || len(s.D) != n*s.Dims {
		return ErrSizeMismatch
	}

	return nil
}
