package physics

import (
	"fmt"
	"math"
)

// Constraint encodes the legal numeric range for a symbol in one domain.
// Bounds are inclusive unless the matching Excl flag is set; an infinite
// bound means unbounded on that side. The same Symbol can carry different
// constraints in different domains (velocity is signed in kinematics but a
// speed in circular motion).
type Constraint struct {
	Min, Max         float64
	ExclMin, ExclMax bool
}

// Unbounded accepts any finite value.
func Unbounded() Constraint {
	return Constraint{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Positive requires v > 0.
func Positive() Constraint {
	return Constraint{Min: 0, ExclMin: true, Max: math.Inf(1)}
}

// NonNegative requires v >= 0.
func NonNegative() Constraint {
	return Constraint{Min: 0, Max: math.Inf(1)}
}

// Range requires lo <= v <= hi.
func Range(lo, hi float64) Constraint {
	return Constraint{Min: lo, Max: hi}
}

// AbsMax requires |v| <= bound.
func AbsMax(bound float64) Constraint {
	return Constraint{Min: -bound, Max: bound}
}

// AbsBelow requires |v| < bound.
func AbsBelow(bound float64) Constraint {
	return Constraint{Min: -bound, ExclMin: true, Max: bound, ExclMax: true}
}

// AtLeast requires v >= lo.
func AtLeast(lo float64) Constraint {
	return Constraint{Min: lo, Max: math.Inf(1)}
}

// Violation returns a human-readable reason when v falls outside the
// constraint, or "" when v is acceptable. NaN and infinities are always
// rejected.
func (c Constraint) Violation(v float64) string {
	if math.IsNaN(v) {
		return "value is NaN"
	}
	if math.IsInf(v, 0) {
		return "value is infinite"
	}
	if c.ExclMin && v <= c.Min {
		return fmt.Sprintf("must be > %g", c.Min)
	}
	if !c.ExclMin && v < c.Min {
		return fmt.Sprintf("must be >= %g", c.Min)
	}
	if c.ExclMax && v >= c.Max {
		return fmt.Sprintf("must be < %g", c.Max)
	}
	if !c.ExclMax && v > c.Max {
		return fmt.Sprintf("must be <= %g", c.Max)
	}
	return ""
}
