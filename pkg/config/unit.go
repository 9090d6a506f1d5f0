package config

import (
	"errors"
	"fmt"

	"github.com/tigerbot-team/angle/pkg/angle"
)

var ErrInvalidUnit = errors.New("invalid unit")

type Unit string

const (
	Degrees Unit = "degrees"
	Radians Unit = "radians"
)

type InvalidUnitError struct {
	Value Unit
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("invalid unit %q: must be %q or %q", string(e.Value), Degrees, Radians)
}

func (e *InvalidUnitError) Unwrap() error { return ErrInvalidUnit }

func (u Unit) String() string { return string(u) }

func (u Unit) Validate() error {
	switch u {
	case Degrees, Radians:
		return nil
	}
	return &InvalidUnitError{Value: u}
}

// Angle interprets v in unit u. Anything other than Radians is taken as
// degrees.
func (u Unit) Angle(v float64) angle.Angle {
	if u == Radians {
		return angle.FromRadians(v)
	}
	return angle.FromDegrees(v)
}

// Value projects a into unit u.
func (u Unit) Value(a angle.Angle) float64 {
	if u == Radians {
		return a.InRadians()
	}
	return a.InDegrees()
}

// Symbol is the suffix used when printing values in unit u.
func (u Unit) Symbol() string {
	if u == Radians {
		return " rad"
	}
	return "°"
}

// Set and Type let a Unit be used directly as a command-line flag value.
func (u *Unit) Set(s string) error {
	v := Unit(s)
	if err := v.Validate(); err != nil {
		return err
	}
	*u = v
	return nil
}

func (u *Unit) Type() string { return "unit" }
