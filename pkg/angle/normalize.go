package angle

import "math"

// Normalized folds the angle into [0, 360) degrees.
//
// math.Mod keeps the sign of the dividend, so a negative remainder is shifted
// up by a full circle. If that shift rounds up to exactly 360 degrees the
// result is 0 instead. Between inherits this: an angle a hair below start
// counts as start itself, so FromRadians(-1e-18).Between(Zero(), Zero()) is
// true.
func (a Angle) Normalized() Angle {
	r := math.Mod(a.radians, twoPi)
	if r < 0 {
		r += twoPi
		// A tiny negative remainder can round up to exactly 2π.
		if r == twoPi {
			r = 0
		}
	}
	return Angle{r}
}

// NormalizedDelta folds the angle into the signed range around zero, giving
// the shortest rotation that reaches it. +180 degrees stays at +180 and
// values above it wrap to the negative side; a remainder of exactly -180
// degrees is left as it is.
func (a Angle) NormalizedDelta() Angle {
	r := math.Mod(a.radians, twoPi)
	if r < -math.Pi {
		r += twoPi
	} else if r > math.Pi {
		r -= twoPi
	}
	return Angle{r}
}
