package rules

import (
	"math"

	"github.com/roach88/noether/physics"
)

// chargedParticleTable covers the Lorentz force on a point charge. The
// electric form F = q*E and the magnetic form F = q*v*B*sin(theta) are
// separate sub-cases; when the inputs satisfy both, the electric form
// is declared first and wins. A force larger than q*v*B has no angle.
var chargedParticleTable = &Table{
	Domain: physics.ChargedParticle,
	Rules: []Rule{
		derive(force, "F = q*E", need(q, eField), func(k *physics.Knowns) float64 {
			return k.Get(q) * k.Get(eField)
		}),
		derive(force, "F = q*v*B*sin(theta)", need(q, v, b, theta), func(k *physics.Knowns) float64 {
			return k.Get(q) * k.Get(v) * k.Get(b) * math.Sin(k.Get(theta))
		}),
		deriveIf(q, "q = F/E", need(force, eField),
			func(k *physics.Knowns) bool { return k.Get(eField) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(force) / k.Get(eField) }),
		deriveIf(eField, "E = F/q", need(force, q),
			func(k *physics.Knowns) bool { return k.Get(q) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(force) / k.Get(q) }),
		deriveIf(v, "v = F/(q*B*sin(theta))", need(force, q, b, theta),
			func(k *physics.Knowns) bool {
				return k.Get(q)*k.Get(b)*math.Sin(k.Get(theta)) != 0
			},
			func(k *physics.Knowns) float64 {
				return k.Get(force) / (k.Get(q) * k.Get(b) * math.Sin(k.Get(theta)))
			}),
		deriveIf(b, "B = F/(q*v*sin(theta))", need(force, q, v, theta),
			func(k *physics.Knowns) bool {
				return k.Get(q)*k.Get(v)*math.Sin(k.Get(theta)) != 0
			},
			func(k *physics.Knowns) float64 {
				return k.Get(force) / (k.Get(q) * k.Get(v) * math.Sin(k.Get(theta)))
			}),
		deriveErr(theta, "theta = asin(F/(q*v*B))", need(force, q, v, b),
			func(k *physics.Knowns) (float64, error) {
				const eq = "theta = asin(F/(q*v*B))"
				denom := k.Get(q) * k.Get(v) * k.Get(b)
				if denom == 0 {
					return 0, divZero(theta, eq)
				}
				ratio := k.Get(force) / denom
				if math.Abs(ratio) > 1 {
					return 0, impossible(theta, eq, "force exceeds q*v*B")
				}
				return math.Asin(ratio), nil
			}),
	},
}
