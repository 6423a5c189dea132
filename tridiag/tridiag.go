package tridiag

// Solve — Thomas algorithm with optional cyclic (Sherman–Morrison) correction.
//
// Description:
//
//	Solve eliminates the banded system in place: a forward sweep folds the
//	sub-diagonal into the main diagonal, then a backward sweep recovers the
//	unknowns. Every right-hand-side column in D is processed with the same
//	elimination factors, so a Dims-column system costs one sweep, not Dims.
//
// Algorithm Outline (plain):
//  1. For i = 1..N-1: f = A[i]/B[i-1]; B[i] -= f·C[i-1]; D[i,:] -= f·D[i-1,:].
//  2. D[N-1,:] /= B[N-1].
//  3. For i = N-2..0: D[i,:] = (D[i,:] - C[i]·D[i+1,:]) / B[i].
//
// Cyclic variant (A[0] != 0 or C[N-1] != 0):
//
//	The wrap-around corners make T a tridiagonal matrix plus a rank-one
//	update u·vᵀ. Solve subtracts the update (zeroing the corners and
//	adjusting B[0], B[N-1]), runs the plain sweeps on D and on a single
//	correction column q, and recombines:
//
//	  vq = q[0] - q[N-1]·vn,  vy = D[0,j] - D[N-1,j]·vn,
//	  k  = vy / (1 + vq),     D[i,j] -= k·q[i],
//
//	where vn = A[0]/B[0] is recorded before the corners are cleared.
//	Two banded sweeps replace a dense solve — still O(N·Dims).
//
// Errors:
//   - ErrNilSystem    — sys is nil.
//   - ErrSizeMismatch — inconsistent lengths, empty system, or Dims < 1.
//   - ErrZeroPivot    — a pivot vanished; cannot happen for diagonally
//     dominant systems such as cubic-spline moment equations.
func Solve(sys *System) error {
	if err := sys.validate(); err != nil {
		return err
	}

	if IsCyclic(sys) {
		return solveCyclic(sys)
	}

	return sweep(sys, nil)
}

// IsCyclic reports whether sys carries nonzero wrap-around corners and
// will therefore be solved with the rank-one correction.
func IsCyclic(sys *System) bool {
	if sys == nil || len(sys.B) == 0 {
		return false
	}

	return sys.A[0] != 0 || sys.C[len(sys.C)-1] != 0
}

// sweep runs forward elimination and back-substitution on sys.D and,
// when q is non-nil, on the correction column q with identical factors.
func sweep(sys *System, q []float64) error {
	n, dims := len(sys.B), sys.Dims
	a, b, c, d := sys.A, sys.B, sys.C, sys.D

	// Forward elimination, i = 1..n-1.
	for i := 1; i < n; i++ {
		if b[i-1] == 0 {
			return ErrZeroPivot
		}
		f := a[i] / b[i-1]
		b[i] -= f * c[i-1]
		if q != nil {
			q[i] -= f * q[i-1]
		}
		for j := 0; j < dims; j++ {
			d[i*dims+j] -= f * d[(i-1)*dims+j]
		}
	}

	// Back-substitution base case, i = n-1.
	if b[n-1] == 0 {
		return ErrZeroPivot
	}
	if q != nil {
		q[n-1] /= b[n-1]
	}
	for j := 0; j < dims; j++ {
		d[(n-1)*dims+j] /= b[n-1]
	}

	// Back-substitution, i = n-2..0. Pivots already verified nonzero above.
	for i := n - 2; i >= 0; i-- {
		if q != nil {
			q[i] = (q[i] - c[i]*q[i+1]) / b[i]
		}
		for j := 0; j < dims; j++ {
			d[i*dims+j] = (d[i*dims+j] - c[i]*d[(i+1)*dims+j]) / b[i]
		}
	}

	return nil
}

// solveCyclic reduces the cyclic system to a strictly tridiagonal one,
// sweeps it together with the correction column, and recombines per the
// Sherman–Morrison formula.
func solveCyclic(sys *System) error {
	n, dims := len(sys.B), sys.Dims
	a, b, c, d := sys.A, sys.B, sys.C, sys.D

	if b[0] == 0 {
		return ErrZeroPivot
	}
	vn := a[0] / b[0]

	// Correction column: nonzero only at the two coupled ends.
	q := make([]float64, n)
	q[0] = -b[0]
	q[n-1] = c[n-1]

	// Remove the rank-one wrap-around term; the remainder is tridiagonal.
	a[0] = 0
	b[n-1] += c[n-1] * vn
	b[0] *= 2
	c[n-1] = 0

	if err := sweep(sys, q); err != nil {
		return err
	}

	// Reconstruct the cyclic solution per column.
	vq := q[0] - q[n-1]*vn
	for j := 0; j < dims; j++ {
		vy := d[j] - d[(n-1)*dims+j]*vn
		k := vy / (1 + vq)
		for i := 0; i < n; i++ {
			d[i*dims+j] -= k * q[i]
		}
	}

	return nil
}
