// Package spline defines core types and configuration options for
// parametric cubic spline interpolation.
//
// A spline binds an ordered sequence of N knots in D dimensions and
// interpolates them with a piecewise-cubic curve parametrized uniformly
// over [0,1]. The unknowns solved for are the moments — second
// derivatives of the interpolant at the knots — obtained from a banded
// linear system whose rows encode the chosen boundary conditions.
//
// Complexity:
//
//	– Set:  O(N·D)   one banded solve over all dimensions at once
//	– Eval: O(D)     closed-form cubic blend on the enclosing segment
//
// Options:
//
//	– LeftBoundary/RightBoundary: independently selectable conditions.
//	– LeftTangent/RightTangent:   used only under Hermite; nil ⇒ zero vector.
//	– Storage:                    moment-buffer backing strategy.
//	– CapacityHint:               pre-sizing hint, in float64 values (N·D).
//	– CopyPoints:                 own a copy of the knot buffer instead of
//	  borrowing the caller's slice.
//
// Errors (sentinel): see errors.go; all matched via errors.Is.
package spline

// BoundaryCondition selects how the spline behaves at an endpoint.
//
// Natural   – clamps the end moment (second derivative) to zero.
// Hermite   – pins the end first derivative to a supplied tangent
//             (missing tangent ⇒ zero vector).
// Periodic  – closes the curve: the opposite end acts as the virtual
//             neighbour, producing a cyclic system.
// NotAKnot  – declared for completeness; no encoder logic exists yet,
//             so Set rejects it with ErrUnsupportedBoundary.
type BoundaryCondition int

const (
	// Natural forces the endpoint moment to zero (default).
	Natural BoundaryCondition = iota
	// Hermite ties the endpoint first derivative to a supplied tangent.
	Hermite
	// Periodic makes the curve closed with wrap-around continuity.
	Periodic
	// NotAKnot is recognized but unsupported; Set rejects it.
	NotAKnot
)

// String implements fmt.Stringer for diagnostics and test output.
func (bc BoundaryCondition) String() string {
	switch bc {
	case Natural:
		return "Natural"
	case Hermite:
		return "Hermite"
	case Periodic:
		return "Periodic"
	case NotAKnot:
		return "NotAKnot"
	default:
		return "Unknown"
	}
}

// supported reports whether encoder logic exists for bc.
func (bc BoundaryCondition) supported() bool {
	return bc == Natural || bc == Hermite || bc == Periodic
}

// StorageMode controls how the moment buffer is backed.
//
// StorageAuto    – pre-size to CapacityHint, grow on demand (default).
// StorageFixed   – pre-size to CapacityHint and never grow; a Set that
//                  needs more room fails with ErrStorageExceeded. Useful
//                  when re-binding curves of bounded size without
//                  re-allocation.
// StorageDynamic – always grow on demand; CapacityHint only pre-warms.
type StorageMode int

const (
	// StorageAuto pre-sizes to the hint and grows when needed.
	StorageAuto StorageMode = iota

	// StorageFixed caps the moment buffer at the hint; overflow errors.
	StorageFixed

	// StorageDynamic grows freely; the hint is a pre-allocation only.
	StorageDynamic
)

// Options configures a Spline. Zero value ⇒ Natural/Natural boundaries,
// no tangents, StorageAuto with no pre-sizing, borrowed knot buffer.
type Options struct {
	LeftBoundary  BoundaryCondition // condition at t=0
	RightBoundary BoundaryCondition // condition at t=1
	LeftTangent   []float64         // Hermite tangent at t=0; nil ⇒ zero vector
	RightTangent  []float64         // Hermite tangent at t=1; nil ⇒ zero vector
	Storage       StorageMode       // moment-buffer backing strategy
	CapacityHint  int               // pre-size, in float64 values (N·D)
	CopyPoints    bool              // copy the knot buffer instead of borrowing
}

// Option represents a functional option for configuring a Spline,
// applied at construction (New) or per rebind (Set).
type Option func(*Options)

// WithBoundary selects the left and right boundary conditions.
// Unsupported conditions are rejected later, in Set, so that a
// mis-configured spline keeps its previous curve intact.
func WithBoundary(left, right BoundaryCondition) Option {
	return func(o *Options) {
		o.LeftBoundary = left
		o.RightBoundary = right
	}
}

// WithLeftTangent supplies the Hermite tangent at t=0.
// Ignored unless LeftBoundary is Hermite; nil means the zero vector.
func WithLeftTangent(tangent []float64) Option {
	return func(o *Options) {
		o.LeftTangent = tangent
	}
}

// WithRightTangent supplies the Hermite tangent at t=1.
// Ignored unless RightBoundary is Hermite; nil means the zero vector.
func WithRightTangent(tangent []float64) Option {
	return func(o *Options) {
		o.RightTangent = tangent
	}
}

// WithTangents supplies both Hermite tangents at once.
func WithTangents(left, right []float64) Option {
	return func(o *Options) {
		o.LeftTangent = left
		o.RightTangent = right
	}
}

// WithStorageMode selects the moment-buffer backing strategy.
func WithStorageMode(mode StorageMode) Option {
	return func(o *Options) {
		o.Storage = mode
	}
}

// WithCapacityHint pre-sizes the moment buffer to hold hint float64
// values (numPoints·numDims). Under StorageFixed this is also the cap.
func WithCapacityHint(hint int) Option {
	return func(o *Options) {
		o.CapacityHint = hint
	}
}

// WithCopiedPoints makes Set copy the knot buffer instead of borrowing
// it, releasing the caller from the keep-alive contract.
func WithCopiedPoints() Option {
	return func(o *Options) {
		o.CopyPoints = true
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further overrides.
//
// Defaults:
//   - LeftBoundary:  Natural
//   - RightBoundary: Natural
//   - Tangents:      nil (zero vectors under Hermite)
//   - Storage:       StorageAuto, no pre-sizing
//   - CopyPoints:    false (knot buffer is borrowed)
func DefaultOptions() Options {
	return Options{
		LeftBoundary:  Natural,
		RightBoundary: Natural,
		Storage:       StorageAuto,
	}
}
