// Package angle provides Angle, an immutable planar angle with degree and
// radian projections, trigonometry, wraparound-aware normalization and
// comparison.
//
//	heading := angle.FromDegrees(-450)
//	heading.Normalized().InDegrees()      // 270
//	heading.NormalizedDelta().InDegrees() // -90
//
//	angle.FromDegrees(1).CloseTo(angle.FromDegrees(359), angle.FromDegrees(5)) // true
package angle
