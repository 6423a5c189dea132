package spline

import "github.com/katalvlaran/splinekit/tridiag"

// Moment computation: curvature continuity at every interior knot gives
// one banded equation per knot and dimension,
//
//	m[i-1] + 4·m[i] + m[i+1] = 6·((P[i+1]-P[i]) - (P[i]-P[i-1])),
//
// and the two boundary rows encode the chosen end conditions. The
// resulting system is strictly tridiagonal unless an end is Periodic, in
// which case the wrap-around neighbour lands in a corner entry and the
// solver switches to its cyclic mode.
//
// computeMoments encodes the rows directly into m (len numPoints·numDims,
// row-major) and solves in place; on return m holds the moments. All
// dimensions share one elimination pass.
func computeMoments(points []float64, numPoints, numDims int, opts *Options, m []float64) error {
	a := make([]float64, numPoints)
	b := make([]float64, numPoints)
	c := make([]float64, numPoints)

	encodeLeftRow(points, numPoints, numDims, opts, a, b, c, m)
	encodeInteriorRows(points, numPoints, numDims, a, b, c, m)
	encodeRightRow(points, numPoints, numDims, opts, a, b, c, m)

	sys := &tridiag.System{A: a, B: b, C: c, D: m, Dims: numDims}

	return tridiag.Solve(sys)
}

// encodeLeftRow fills row 0 of the system according to the left boundary
// condition. For Periodic, the last knot acts as the virtual predecessor
// and the sub-diagonal corner A[0] becomes nonzero — the cyclic trigger.
func encodeLeftRow(points []float64, numPoints, numDims int, opts *Options, a, b, c, d []float64) {
	switch opts.LeftBoundary {
	case Hermite:
		a[0], b[0], c[0] = 0, 2, 1
		for j := 0; j < numDims; j++ {
			tangent := 0.0
			if opts.LeftTangent != nil {
				tangent = opts.LeftTangent[j]
			}
			d[j] = 6 * ((points[numDims+j] - points[j]) - tangent)
		}
	case Periodic:
		a[0], b[0], c[0] = 1, 4, 1
		last := (numPoints - 1) * numDims
		for j := 0; j < numDims; j++ {
			d[j] = 6 * ((points[numDims+j] - points[j]) - (points[j] - points[last+j]))
		}
	default: // Natural: pin the end moment to zero.
		a[0], b[0], c[0] = 0, 1, 0
		for j := 0; j < numDims; j++ {
			d[j] = 0
		}
	}
}

// encodeInteriorRows fills rows 1..numPoints-2 with the standard
// second-difference curvature relation; identical for every boundary mix.
func encodeInteriorRows(points []float64, numPoints, numDims int, a, b, c, d []float64) {
	for i := 1; i < numPoints-1; i++ {
		a[i], b[i], c[i] = 1, 4, 1
		row, prev, next := i*numDims, (i-1)*numDims, (i+1)*numDims
		for j := 0; j < numDims; j++ {
			d[row+j] = 6 * ((points[next+j] - points[row+j]) - (points[row+j] - points[prev+j]))
		}
	}
}

// encodeRightRow mirrors encodeLeftRow for row numPoints-1; under
// Periodic the first knot is the virtual successor and C[N-1] becomes
// the nonzero corner.
func encodeRightRow(points []float64, numPoints, numDims int, opts *Options, a, b, c, d []float64) {
	n := numPoints - 1
	row, prev := n*numDims, (n-1)*numDims
	switch opts.RightBoundary {
	case Hermite:
		a[n], b[n], c[n] = 1, 2, 0
		for j := 0; j < numDims; j++ {
			tangent := 0.0
			if opts.RightTangent != nil {
				tangent = opts.RightTangent[j]
			}
			d[row+j] = 6 * (tangent - (points[row+j] - points[prev+j]))
		}
	case Periodic:
		a[n], b[n], c[n] = 1, 4, 1
		for j := 0; j < numDims; j++ {
			d[row+j] = 6 * ((points[j] - points[row+j]) - (points[row+j] - points[prev+j]))
		}
	default: // Natural
		a[n], b[n], c[n] = 0, 1, 0
		for j := 0; j < numDims; j++ {
			d[row+j] = 0
		}
	}
}
