package rules

import (
	"math"

	"github.com/roach88/noether/physics"
)

// kinematicsTable covers the SUVAT set in every algebraic direction.
//
// Root policies: the quadratic-in-t form returns the smaller non-negative
// root (the first instant the displacement is reached) and precedes the v
// square-root form, so from {u, a, s} the chosen time drives v = u + a*t.
// The u square-root form returns the non-negative root. A negative
// radicand in any of them means the inputs describe no real motion.
var kinematicsTable = &Table{
	Domain: physics.Kinematics,
	Rules: []Rule{
		derive(v, "v = u + a*t", need(u, a, tt), func(k *physics.Knowns) float64 {
			return k.Get(u) + k.Get(a)*k.Get(tt)
		}),
		// Uniform motion: velocity is constant, sign included.
		deriveIf(v, "v = u", need(u, a),
			func(k *physics.Knowns) bool { return k.Get(a) == 0 },
			func(k *physics.Knowns) float64 { return k.Get(u) }),
		derive(u, "u = v - a*t", need(v, a, tt), func(k *physics.Knowns) float64 {
			return k.Get(v) - k.Get(a)*k.Get(tt)
		}),
		deriveIf(a, "a = (v - u)/t", need(v, u, tt),
			func(k *physics.Knowns) bool { return k.Get(tt) != 0 },
			func(k *physics.Knowns) float64 {
				return (k.Get(v) - k.Get(u)) / k.Get(tt)
			}),
		deriveIf(tt, "t = (v - u)/a", need(v, u, a),
			func(k *physics.Knowns) bool { return k.Get(a) != 0 },
			func(k *physics.Knowns) float64 {
				return (k.Get(v) - k.Get(u)) / k.Get(a)
			}),
		derive(s, "s = (u + v)/2*t", need(u, v, tt), func(k *physics.Knowns) float64 {
			return (k.Get(u) + k.Get(v)) / 2 * k.Get(tt)
		}),
		derive(s, "s = u*t + 1/2*a*t^2", need(u, a, tt), func(k *physics.Knowns) float64 {
			return k.Get(u)*k.Get(tt) + 0.5*k.Get(a)*k.Get(tt)*k.Get(tt)
		}),
		// Root selection for the {u, a, s} branch happens here: the
		// smaller non-negative root is the answer, and v then follows
		// from v = u + a*t on the next sweep.
		deriveErrIf(tt, "t = (-u + sqrt(u^2 + 2*a*s))/a", need(u, a, s),
			func(k *physics.Knowns) bool { return k.Get(a) != 0 },
			func(k *physics.Knowns) (float64, error) {
				const eq = "t = (-u + sqrt(u^2 + 2*a*s))/a"
				disc := k.Get(u)*k.Get(u) + 2*k.Get(a)*k.Get(s)
				if disc < 0 {
					return 0, impossible(tt, eq, "discriminant is negative")
				}
				root := math.Sqrt(disc)
				t1 := (-k.Get(u) + root) / k.Get(a)
				t2 := (-k.Get(u) - root) / k.Get(a)
				return smallerNonNegative(t1, t2, tt, eq)
			}),
		// Skipped once t is known (v = u + a*t carries the chosen root's
		// sign) and under uniform motion (sqrt would lose u's sign).
		deriveErrIf(v, "v = sqrt(u^2 + 2*a*s)", need(u, a, s),
			func(k *physics.Knowns) bool { return k.Get(a) != 0 && !k.Has(tt) },
			func(k *physics.Knowns) (float64, error) {
				rhs := k.Get(u)*k.Get(u) + 2*k.Get(a)*k.Get(s)
				if rhs < 0 {
					return 0, impossible(v, "v = sqrt(u^2 + 2*a*s)", "u^2 + 2*a*s is negative")
				}
				return math.Sqrt(rhs), nil
			}),
		deriveErr(u, "u = sqrt(v^2 - 2*a*s)", need(v, a, s), func(k *physics.Knowns) (float64, error) {
			rhs := k.Get(v)*k.Get(v) - 2*k.Get(a)*k.Get(s)
			if rhs < 0 {
				return 0, impossible(u, "u = sqrt(v^2 - 2*a*s)", "v^2 - 2*a*s is negative")
			}
			return math.Sqrt(rhs), nil
		}),
		deriveIf(a, "a = (v^2 - u^2)/(2*s)", need(v, u, s),
			func(k *physics.Knowns) bool { return k.Get(s) != 0 },
			func(k *physics.Knowns) float64 {
				return (k.Get(v)*k.Get(v) - k.Get(u)*k.Get(u)) / (2 * k.Get(s))
			}),
		deriveIf(tt, "t = 2*s/(u + v)", need(u, v, s),
			func(k *physics.Knowns) bool { return k.Get(u)+k.Get(v) != 0 },
			func(k *physics.Knowns) float64 {
				return 2 * k.Get(s) / (k.Get(u) + k.Get(v))
			}),
	},
}

// smallerNonNegative picks the earlier physical time from two quadratic
// roots, rejecting the pair when both lie in the past.
func smallerNonNegative(t1, t2 float64, out physics.Symbol, eq string) (float64, error) {
	best := math.Inf(1)
	if t1 >= 0 && t1 < best {
		best = t1
	}
	if t2 >= 0 && t2 < best {
		best = t2
	}
	if math.IsInf(best, 1) {
		return 0, impossible(out, eq, "both roots are negative")
	}
	return best, nil
}
