package angle

// CloseTo reports whether the shortest rotation between a and other is no
// larger than threshold in either direction, so 1° and 359° are 2° apart.
//
// threshold should not be negative. A negative threshold gives an empty
// range, so CloseTo is false for every pair, even identical angles.
func (a Angle) CloseTo(other, threshold Angle) bool {
	delta := a.Sub(other).NormalizedDelta().radians
	return -threshold.radians <= delta && delta <= threshold.radians
}

// Between reports whether a lies on the arc swept from start to end in the
// direction of increasing angle. Swapping start and end tests the
// complementary arc. When start and end are the same direction the sweep has
// zero width and only start itself is contained.
func (a Angle) Between(start, end Angle) bool {
	width := end.Sub(start).Normalized().radians
	delta := a.Sub(start).Normalized().radians
	return delta <= width
}
