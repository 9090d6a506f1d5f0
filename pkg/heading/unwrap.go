package heading

import "github.com/tigerbot-team/angle/pkg/angle"

// Unwrap returns the angle equal to a, modulo a full circle, that is nearest
// to reference. It turns a wrapped reading into one that can be compared
// with a continuous (multi-turn) heading such as a wheel odometry total.
func Unwrap(reference, a angle.Angle) angle.Angle {
	return reference.Add(a.Sub(reference).NormalizedDelta())
}

// TargetNear returns the current target unwrapped to within half a circle
// of reference.
func (h *Holder) TargetNear(reference angle.Angle) angle.Angle {
	return Unwrap(reference, h.Target())
}
