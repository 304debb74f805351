package rules

import (
	"math"

	"github.com/roach88/noether/physics"
)

// dynamicsTable covers Newton's second law, momentum and impulse, work,
// energy, power, and flat-or-incline friction geometry.
//
// The incline angle theta defaults to zero at seed time (flat ground), so
// F_N = m*g*cos(theta) covers both the flat and incline normal-force
// cases with one rule.
var dynamicsTable = &Table{
	Domain: physics.Dynamics,
	Rules: []Rule{
		// F = m*a
		derive(force, "F = m*a", need(mass, a), func(k *physics.Knowns) float64 {
			return k.Get(mass) * k.Get(a)
		}),
		deriveIf(mass, "m = F/a", need(force, a),
			func(k *physics.Knowns) bool { return k.Get(a) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(force) / k.Get(a) }),
		deriveIf(a, "a = F/m", need(force, mass),
			func(k *physics.Knowns) bool { return k.Get(mass) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(force) / k.Get(mass) }),

		// p = m*v
		derive(mom, "p = m*v", need(mass, v), func(k *physics.Knowns) float64 {
			return k.Get(mass) * k.Get(v)
		}),
		deriveIf(mass, "m = p/v", need(mom, v),
			func(k *physics.Knowns) bool { return k.Get(v) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(mom) / k.Get(v) }),
		deriveIf(v, "v = p/m", need(mom, mass),
			func(k *physics.Knowns) bool { return k.Get(mass) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(mom) / k.Get(mass) }),

		// J = F*t = delta_p
		derive(imp, "J = F*t", need(force, tt), func(k *physics.Knowns) float64 {
			return k.Get(force) * k.Get(tt)
		}),
		deriveIf(force, "F = J/t", need(imp, tt),
			func(k *physics.Knowns) bool { return k.Get(tt) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(imp) / k.Get(tt) }),
		deriveIf(tt, "t = J/F", need(imp, force),
			func(k *physics.Knowns) bool { return k.Get(force) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(imp) / k.Get(force) }),
		derive(dp, "delta_p = J", need(imp), func(k *physics.Knowns) float64 {
			return k.Get(imp)
		}),
		derive(imp, "J = delta_p", need(dp), func(k *physics.Knowns) float64 {
			return k.Get(dp)
		}),

		// W = F*s*cos(theta)
		derive(work, "W = F*s*cos(theta)", need(force, s, theta), func(k *physics.Knowns) float64 {
			return k.Get(force) * k.Get(s) * math.Cos(k.Get(theta))
		}),
		deriveIf(force, "F = W/(s*cos(theta))", need(work, s, theta),
			func(k *physics.Knowns) bool { return k.Get(s)*math.Cos(k.Get(theta)) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(work) / (k.Get(s) * math.Cos(k.Get(theta)))
			}),
		deriveIf(s, "s = W/(F*cos(theta))", need(work, force, theta),
			func(k *physics.Knowns) bool { return k.Get(force)*math.Cos(k.Get(theta)) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(work) / (k.Get(force) * math.Cos(k.Get(theta)))
			}),

		// KE = 1/2*m*v^2
		derive(ke, "KE = 1/2*m*v^2", need(mass, v), func(k *physics.Knowns) float64 {
			return 0.5 * k.Get(mass) * k.Get(v) * k.Get(v)
		}),
		deriveIf(v, "v = sqrt(2*KE/m)", need(ke, mass),
			func(k *physics.Knowns) bool { return k.Get(mass) != 0 && k.Get(ke) >= 0 },
			func(k *physics.Knowns) float64 {
				return math.Sqrt(2 * k.Get(ke) / k.Get(mass))
			}),
		deriveIf(mass, "m = 2*KE/v^2", need(ke, v),
			func(k *physics.Knowns) bool { return k.Get(v) != 0 },
			func(k *physics.Knowns) float64 {
				return 2 * k.Get(ke) / (k.Get(v) * k.Get(v))
			}),

		// PE = m*g*s*sin(theta), s measured along the slope
		derive(pe, "PE = m*g*s*sin(theta)", need(mass, s, theta), func(k *physics.Knowns) float64 {
			return k.Get(mass) * physics.Gravity * k.Get(s) * math.Sin(k.Get(theta))
		}),
		deriveIf(mass, "m = PE/(g*s*sin(theta))", need(pe, s, theta),
			func(k *physics.Knowns) bool { return k.Get(s)*math.Sin(k.Get(theta)) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(pe) / (physics.Gravity * k.Get(s) * math.Sin(k.Get(theta)))
			}),
		deriveIf(s, "s = PE/(m*g*sin(theta))", need(pe, mass, theta),
			func(k *physics.Knowns) bool { return k.Get(mass)*math.Sin(k.Get(theta)) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(pe) / (k.Get(mass) * physics.Gravity * math.Sin(k.Get(theta)))
			}),

		// F_f = mu*F_N
		derive(fFric, "F_f = mu*F_N", need(mu, fNorm), func(k *physics.Knowns) float64 {
			return k.Get(mu) * k.Get(fNorm)
		}),
		deriveIf(mu, "mu = F_f/F_N", need(fFric, fNorm),
			func(k *physics.Knowns) bool { return k.Get(fNorm) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(fFric) / k.Get(fNorm) }),
		deriveIf(fNorm, "F_N = F_f/mu", need(fFric, mu),
			func(k *physics.Knowns) bool { return k.Get(mu) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(fFric) / k.Get(mu) }),

		// Incline geometry; cos(0) = 1 reduces these to the flat case.
		derive(fNorm, "F_N = m*g*cos(theta)", need(mass, theta), func(k *physics.Knowns) float64 {
			return k.Get(mass) * physics.Gravity * math.Cos(k.Get(theta))
		}),
		deriveIf(mass, "m = F_N/(g*cos(theta))", need(fNorm, theta),
			func(k *physics.Knowns) bool { return math.Cos(k.Get(theta)) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(fNorm) / (physics.Gravity * math.Cos(k.Get(theta)))
			}),
		derive(fPar, "F_par = m*g*sin(theta)", need(mass, theta), func(k *physics.Knowns) float64 {
			return k.Get(mass) * physics.Gravity * math.Sin(k.Get(theta))
		}),
		deriveIf(mass, "m = F_par/(g*sin(theta))", need(fPar, theta),
			func(k *physics.Knowns) bool { return math.Sin(k.Get(theta)) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(fPar) / (physics.Gravity * math.Sin(k.Get(theta)))
			}),

		// P = W/t
		deriveIf(power, "P = W/t", need(work, tt),
			func(k *physics.Knowns) bool { return k.Get(tt) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(work) / k.Get(tt) }),
		derive(work, "W = P*t", need(power, tt), func(k *physics.Knowns) float64 {
			return k.Get(power) * k.Get(tt)
		}),
		deriveIf(tt, "t = W/P", need(work, power),
			func(k *physics.Knowns) bool { return k.Get(power) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(work) / k.Get(power) }),
	},
}
