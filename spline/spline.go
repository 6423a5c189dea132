package spline

import "math"

// Spline interpolates an ordered knot sequence with a parametric cubic
// curve, uniform over [0,1]. A zero-value Spline is not usable; create
// instances with New, bind a curve with Set, then call Eval freely.
//
// Concurrency: Set is a full-state mutator and must not run concurrently
// with anything else on the same instance. Eval only reads, so any number
// of goroutines may evaluate a stable (non-mutating) instance.
//
// The knot buffer is borrowed from the caller (unless WithCopiedPoints is
// set) and must stay valid and unmodified until the next Set or the end
// of the instance's use.
type Spline struct {
	base      Options // construction-time defaults for every Set
	cur       Options // effective options of the last successful Set
	points    []float64
	numPoints int
	numDims   int
	moments   buffer
	ready     bool
}

// New creates an empty spline. Storage-related options (WithStorageMode,
// WithCapacityHint) take effect here; curve options (boundaries,
// tangents) become the defaults that individual Set calls may override.
// New never fails — size validation happens in Set, where the sizes are
// actually known.
func New(opts ...Option) *Spline {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Spline{
		base:    cfg,
		moments: newBuffer(cfg.Storage, cfg.CapacityHint),
	}
}

// Set binds a knot sequence and recomputes the moment array.
//
// points is a flat row-major buffer of at least numPoints·numDims values
// (points[i*numDims+j] is coordinate j of knot i). Per-call options are
// applied on top of the construction-time defaults for this rebind only;
// storage options cannot be changed after New and are ignored here.
//
// Set is all-or-nothing: on any rejected precondition the previously
// bound curve stays fully intact and evaluable. Re-binding always
// recomputes every moment; there is no incremental update.
//
// Errors: ErrTooFewPoints, ErrBadDimension, ErrBadPointCount,
// ErrUnsupportedBoundary, ErrBadTangent, ErrStorageExceeded.
// Complexity: O(numPoints·numDims).
func (s *Spline) Set(points []float64, numPoints, numDims int, opts ...Option) error {
	cfg := s.base
	for _, opt := range opts {
		opt(&cfg)
	}

	// Validate every precondition before touching instance state.
	if numPoints < 2 {
		return ErrTooFewPoints
	}
	if numDims < 1 {
		return ErrBadDimension
	}
	if len(points) < numPoints*numDims {
		return ErrBadPointCount
	}
	if !cfg.LeftBoundary.supported() || !cfg.RightBoundary.supported() {
		return ErrUnsupportedBoundary
	}
	if cfg.LeftBoundary == Hermite && cfg.LeftTangent != nil && len(cfg.LeftTangent) != numDims {
		return ErrBadTangent
	}
	if cfg.RightBoundary == Hermite && cfg.RightTangent != nil && len(cfg.RightTangent) != numDims {
		return ErrBadTangent
	}
	if !s.moments.fits(numPoints * numDims) {
		return ErrStorageExceeded
	}

	// All preconditions hold; bind and compute. resize cannot fail after fits.
	if err := s.moments.resize(numPoints * numDims); err != nil {
		return err
	}
	knots := points[:numPoints*numDims]
	if cfg.CopyPoints {
		knots = append([]float64(nil), knots...)
	}
	if err := computeMoments(knots, numPoints, numDims, &cfg, s.moments.vals()); err != nil {
		// The encoder guarantees diagonal dominance for every supported
		// boundary condition, so this path signals an invariant violation.
		// The instance is left unbound rather than holding half-solved moments.
		s.ready = false

		return err
	}

	s.points = knots
	s.numPoints = numPoints
	s.numDims = numDims
	s.cur = cfg
	s.ready = true

	return nil
}

// SetPoints binds a knot sequence given as one slice per knot, inferring
// numPoints and numDims. The rows are flattened into an owned buffer, so
// the borrowed-slice contract does not apply here.
//
// Errors: ErrRaggedPoints when rows differ in length, plus everything
// Set returns.
func (s *Spline) SetPoints(points [][]float64, opts ...Option) error {
	if len(points) < 2 {
		return ErrTooFewPoints
	}
	numDims := len(points[0])
	if numDims < 1 {
		return ErrBadDimension
	}
	for _, p := range points[1:] {
		if len(p) != numDims {
			return ErrRaggedPoints
		}
	}

	flat := make([]float64, 0, len(points)*numDims)
	for _, p := range points {
		flat = append(flat, p...)
	}

	return s.Set(flat, len(points), numDims, opts...)
}

// Eval evaluates the curve at parameter t and returns a freshly
// allocated point of NumDims coordinates. t=0 yields the first knot and
// t=1 the last one exactly; values outside [0,1] extrapolate the end
// segments. Complexity: O(numDims).
func (s *Spline) Eval(t float64) ([]float64, error) {
	if !s.ready {
		return nil, ErrNotReady
	}
	out := make([]float64, s.numDims)
	if err := s.EvalInto(t, out); err != nil {
		return nil, err
	}

	return out, nil
}

// EvalInto evaluates the curve at parameter t into out, which must hold
// at least NumDims values. Allocation-free; safe for concurrent use on a
// stable instance.
func (s *Spline) EvalInto(t float64, out []float64) error {
	if !s.ready {
		return ErrNotReady
	}
	if len(out) < s.numDims {
		return ErrShortBuffer
	}

	seg, u := s.locateSegment(t)
	dims := s.numDims
	lo, hi := seg*dims, (seg+1)*dims

	u0 := u * u * u
	u1 := (1 - u) * (1 - u) * (1 - u)
	for j := 0; j < dims; j++ {
		pLo, pHi := s.points[lo+j], s.points[hi+j]
		mLo, mHi := s.moments.at(lo+j), s.moments.at(hi+j)
		c := (pHi - pLo) - (mHi-mLo)/6
		d := pLo - mLo/6
		out[j] = (u1*mLo+u0*mHi)/6 + c*u + d
	}

	return nil
}

// EvalAll evaluates the curve at every parameter in ts, writing one
// NumDims-wide row per parameter into out in input order. Parameters
// need not be sorted or distinct. out must hold at least
// len(ts)·NumDims values. Complexity: O(len(ts)·numDims).
func (s *Spline) EvalAll(ts []float64, out []float64) error {
	if !s.ready {
		return ErrNotReady
	}
	if len(out) < len(ts)*s.numDims {
		return ErrShortBuffer
	}

	for k, t := range ts {
		if err := s.EvalInto(t, out[k*s.numDims:(k+1)*s.numDims]); err != nil {
			return err
		}
	}

	return nil
}

// locateSegment maps parameter t to the enclosing segment index in
// [0, numPoints-2] and the local fraction within it. t=1 maps onto the
// last segment with fraction 1 rather than one past the end; parameters
// outside [0,1] clamp to the end segments with out-of-range fractions,
// which the cubic blend extrapolates naturally.
func (s *Spline) locateSegment(t float64) (int, float64) {
	x := t * float64(s.numPoints-1)
	seg := int(math.Floor(x))
	if seg < 0 {
		seg = 0
	}
	if seg > s.numPoints-2 {
		seg = s.numPoints - 2
	}

	return seg, x - float64(seg)
}

// NumPoints returns the number of bound knots, or 0 before the first Set.
func (s *Spline) NumPoints() int { return s.numPoints }

// NumDims returns the dimensionality of the bound knots, or 0 before Set.
func (s *Spline) NumDims() int { return s.numDims }

// Ready reports whether a curve is bound and evaluable.
func (s *Spline) Ready() bool { return s.ready }

// Boundary returns the boundary conditions of the last successful Set.
func (s *Spline) Boundary() (left, right BoundaryCondition) {
	return s.cur.LeftBoundary, s.cur.RightBoundary
}

// Moments returns a copy of the computed moment array (numPoints·numDims
// values, row-major), or nil before the first successful Set. Intended
// for diagnostics and tests; evaluation does not need it.
func (s *Spline) Moments() []float64 {
	if !s.ready {
		return nil
	}

	return append([]float64(nil), s.moments.vals()...)
}
