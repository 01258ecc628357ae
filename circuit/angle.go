//
// Copyright (c) 2025-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"math"
)

// Angle specifies a canonical rotation angle label. The zero value
// AngleNone means the gate carries no angle.
type Angle byte

// Canonical angle labels.
const (
	AngleNone Angle = iota
	AnglePi
	AngleHalfPi
	AngleNegHalfPi
	AngleQuarterPi
	AngleNegQuarterPi
	AngleOther
)

const angleEps = 1e-9

// pi is the rune used in angle-label rendering.
const pi = 'π'

func (a Angle) String() string {
	switch a {
	case AngleNone:
		return ""
	case AnglePi:
		return fmt.Sprintf("%c", pi)
	case AngleHalfPi:
		return fmt.Sprintf("%c/2", pi)
	case AngleNegHalfPi:
		return fmt.Sprintf("-%c/2", pi)
	case AngleQuarterPi:
		return fmt.Sprintf("%c/4", pi)
	case AngleNegQuarterPi:
		return fmt.Sprintf("-%c/4", pi)
	case AngleOther:
		return "?"
	default:
		return fmt.Sprintf("{Angle %d}", byte(a))
	}
}

// AngleOf classifies the rotation value in radians into a canonical
// angle label. Values that match no canonical angle map to
// AngleOther.
func AngleOf(value float64) Angle {
	switch {
	case math.Abs(value-math.Pi) < angleEps:
		return AnglePi
	case math.Abs(value-math.Pi/2) < angleEps:
		return AngleHalfPi
	case math.Abs(value+math.Pi/2) < angleEps:
		return AngleNegHalfPi
	case math.Abs(value-math.Pi/4) < angleEps:
		return AngleQuarterPi
	case math.Abs(value+math.Pi/4) < angleEps:
		return AngleNegQuarterPi
	default:
		return AngleOther
	}
}

// Value returns the rotation value of the angle label in radians.
func (a Angle) Value() float64 {
	switch a {
	case AnglePi:
		return math.Pi
	case AngleHalfPi:
		return math.Pi / 2
	case AngleNegHalfPi:
		return -math.Pi / 2
	case AngleQuarterPi:
		return math.Pi / 4
	case AngleNegQuarterPi:
		return -math.Pi / 4
	default:
		return 0
	}
}

// Neg returns the negated angle label.
func (a Angle) Neg() Angle {
	switch a {
	case AngleHalfPi:
		return AngleNegHalfPi
	case AngleNegHalfPi:
		return AngleHalfPi
	case AngleQuarterPi:
		return AngleNegQuarterPi
	case AngleNegQuarterPi:
		return AngleQuarterPi
	default:
		return a
	}
}
