package arc

import "math"

// turn is one full revolution in radians.
const turn = 2 * math.Pi

// Angle is a plane angle in radians, kept normalized in the half-open
// turn [0, 2π). Construct it with NewAngle; every arithmetic method
// re-normalizes its result, so a well-formed Angle never leaves the
// canonical range.
//
// Comparison operators (<, <=, ==, ...) act on the normalized scalar.
// That is a plain linear order on the representative, NOT a circular
// order — 359° compares greater than 1° even though the two are
// neighbours on the circle. The clockwise ordering of intervals is the
// business of Arc, not of Angle.
type Angle float64

// normalize shifts rad back into [0, 2π). NaN and ±Inf propagate as NaN
// per IEEE semantics; detecting them is the caller's concern.
func normalize(rad float64) float64 {
	return rad - turn*math.Floor(rad/turn)
}

// NewAngle returns the Angle for rad, normalized into [0, 2π).
func NewAngle(rad float64) Angle {
	return Angle(normalize(rad))
}

// Rad returns the normalized scalar in radians.
func (a Angle) Rad() float64 {
	return float64(a)
}

// Deg returns the normalized scalar converted to degrees, in [0°, 360°).
func (a Angle) Deg() float64 {
	return float64(a) * 180 / math.Pi
}

// Add returns a+b, normalized.
func (a Angle) Add(b Angle) Angle {
	return NewAngle(float64(a) + float64(b))
}

// Sub returns a-b, normalized. The result is the clockwise sweep from b
// to a, always in [0, 2π) — this is what makes wrap-aware arc spans work.
func (a Angle) Sub(b Angle) Angle {
	return NewAngle(float64(a) - float64(b))
}

// Mul returns a·b, normalized. Multiplying two angles has no physical
// meaning; the operation exists for generic-arithmetic convenience and
// mirrors Add/Sub in behavior.
func (a Angle) Mul(b Angle) Angle {
	return NewAngle(float64(a) * float64(b))
}

// Div returns a/b, normalized. Division by the zero angle follows
// floating-point semantics (the intermediate ±Inf normalizes to NaN);
// no error is reported.
func (a Angle) Div(b Angle) Angle {
	return NewAngle(float64(a) / float64(b))
}
