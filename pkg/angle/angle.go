package angle

import (
	"fmt"
	"math"
)

const (
	twoPi  = 2 * math.Pi
	halfPi = math.Pi / 2
)

// Angle is a planar angle, stored in radians. The stored value is not
// constrained to any range and never changes once the Angle is created; every
// operation that transforms an Angle returns a new one.
//
// NaN and infinities are accepted and propagate through the arithmetic as
// usual for float64.
type Angle struct {
	radians float64
}

// FromDegrees creates an Angle from a value in degrees.
func FromDegrees(degrees float64) Angle {
	return Angle{DegreesToRadians(degrees)}
}

// FromRadians creates an Angle from a value in radians.
func FromRadians(radians float64) Angle {
	return Angle{radians}
}

func Zero() Angle {
	return FromRadians(0)
}

// FullCircle is 360 degrees.
func FullCircle() Angle {
	return FromRadians(twoPi)
}

// HalfCircle is 180 degrees.
func HalfCircle() Angle {
	return FromRadians(math.Pi)
}

// QuarterCircle is 90 degrees.
func QuarterCircle() Angle {
	return FromRadians(halfPi)
}

func (a Angle) InDegrees() float64 {
	return RadiansToDegrees(a.radians)
}

func (a Angle) InRadians() float64 {
	return a.radians
}

func (a Angle) Sin() float64 {
	return math.Sin(a.radians)
}

func (a Angle) Cos() float64 {
	return math.Cos(a.radians)
}

// Tan wraps math.Tan. Near odd multiples of 90 degrees the result is very
// large rather than an error.
func (a Angle) Tan() float64 {
	return math.Tan(a.radians)
}

func (a Angle) Absolute() Angle {
	return Angle{math.Abs(a.radians)}
}

// Add returns a+b without folding the result into any range.
func (a Angle) Add(b Angle) Angle {
	return Angle{a.radians + b.radians}
}

// Sub returns a-b without folding the result into any range.
func (a Angle) Sub(b Angle) Angle {
	return Angle{a.radians - b.radians}
}

// String formats the angle in degrees, e.g. "42.3°".
func (a Angle) String() string {
	return fmt.Sprintf("%g°", a.InDegrees())
}
