package angle

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// DegreesToRadians multiplies by π/180. The constant is rounded once, so
// DegreesToRadians(180.0) is exactly math.Pi.
func DegreesToRadians[T constraints.Float](degrees T) T {
	return degrees * T(degToRad)
}

func RadiansToDegrees[T constraints.Float](radians T) T {
	return radians * T(radToDeg)
}
