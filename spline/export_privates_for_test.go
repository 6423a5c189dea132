package spline

// Test-only exports of private helpers, kept out of the public API.

// LocateSegment exposes segment location for white-box tests.
func (s *Spline) LocateSegment(t float64) (int, float64) {
	return s.locateSegment(t)
}
