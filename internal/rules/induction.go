package rules

import (
	"math"

	"github.com/roach88/noether/physics"
)

// inductionTable covers Faraday's law, emf = -N*delta_phi/delta_t, and
// flux through a tilted loop, phi = B*A*cos(theta). When the caller
// never mentions the tilt, the loop is taken to face the field and the
// theta-free forms fire instead; they skip as soon as theta is known so
// both variants never compete.
var inductionTable = &Table{
	Domain: physics.Induction,
	Rules: []Rule{
		derive(phi, "phi = B*A*cos(theta)", need(b, area, theta), func(k *physics.Knowns) float64 {
			return k.Get(b) * k.Get(area) * math.Cos(k.Get(theta))
		}),
		deriveIf(phi, "phi = B*A", need(b, area),
			func(k *physics.Knowns) bool { return !k.Has(theta) },
			func(k *physics.Knowns) float64 { return k.Get(b) * k.Get(area) }),
		deriveIf(emf, "emf = -N*delta_phi/delta_t", need(turns, dPhi, dT),
			func(k *physics.Knowns) bool { return k.Get(dT) != 0 },
			func(k *physics.Knowns) float64 {
				return -k.Get(turns) * k.Get(dPhi) / k.Get(dT)
			}),
		deriveIf(turns, "N = -emf*delta_t/delta_phi", need(emf, dT, dPhi),
			func(k *physics.Knowns) bool { return k.Get(dPhi) != 0 },
			func(k *physics.Knowns) float64 {
				return -k.Get(emf) * k.Get(dT) / k.Get(dPhi)
			}),
		deriveIf(dPhi, "delta_phi = -emf*delta_t/N", need(emf, dT, turns),
			func(k *physics.Knowns) bool { return k.Get(turns) != 0 },
			func(k *physics.Knowns) float64 {
				return -k.Get(emf) * k.Get(dT) / k.Get(turns)
			}),
		deriveIf(dT, "delta_t = -N*delta_phi/emf", need(emf, turns, dPhi),
			func(k *physics.Knowns) bool { return k.Get(emf) != 0 },
			func(k *physics.Knowns) float64 {
				return -k.Get(turns) * k.Get(dPhi) / k.Get(emf)
			}),
		deriveIf(b, "B = phi/(A*cos(theta))", need(phi, area, theta),
			func(k *physics.Knowns) bool {
				return k.Get(area)*math.Cos(k.Get(theta)) != 0
			},
			func(k *physics.Knowns) float64 {
				return k.Get(phi) / (k.Get(area) * math.Cos(k.Get(theta)))
			}),
		deriveIf(b, "B = phi/A", need(phi, area),
			func(k *physics.Knowns) bool { return !k.Has(theta) && k.Get(area) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(phi) / k.Get(area) }),
		deriveIf(area, "A = phi/(B*cos(theta))", need(phi, b, theta),
			func(k *physics.Knowns) bool {
				return k.Get(b)*math.Cos(k.Get(theta)) != 0
			},
			func(k *physics.Knowns) float64 {
				return k.Get(phi) / (k.Get(b) * math.Cos(k.Get(theta)))
			}),
		deriveIf(area, "A = phi/B", need(phi, b),
			func(k *physics.Knowns) bool { return !k.Has(theta) && k.Get(b) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(phi) / k.Get(b) }),
		deriveErr(theta, "theta = acos(phi/(B*A))", need(phi, b, area),
			func(k *physics.Knowns) (float64, error) {
				const eq = "theta = acos(phi/(B*A))"
				denom := k.Get(b) * k.Get(area)
				if denom == 0 {
					return 0, divZero(theta, eq)
				}
				ratio := k.Get(phi) / denom
				if math.Abs(ratio) > 1 {
					return 0, impossible(theta, eq, "flux exceeds B*A")
				}
				return math.Acos(ratio), nil
			}),
	},
}
