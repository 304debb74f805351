package rules

import (
	"math"

	"github.com/roach88/noether/physics"
)

// gravitationTable covers Newtonian gravity around a central mass M:
// mutual force, field strength, circular orbital speed and period, and
// altitude above the Earth's surface.
var gravitationTable = &Table{
	Domain: physics.Gravitation,
	Rules: []Rule{
		deriveIf(fGrav, "F_g = G*M*m/r^2", need(bigM, mass, r),
			func(k *physics.Knowns) bool { return k.Get(r) != 0 },
			func(k *physics.Knowns) float64 {
				return physics.GravitationalConstant * k.Get(bigM) * k.Get(mass) / (k.Get(r) * k.Get(r))
			}),
		deriveIf(bigM, "M = F_g*r^2/(G*m)", need(fGrav, mass, r),
			func(k *physics.Knowns) bool { return k.Get(mass) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(fGrav) * k.Get(r) * k.Get(r) / (physics.GravitationalConstant * k.Get(mass))
			}),
		deriveIf(mass, "m = F_g*r^2/(G*M)", need(fGrav, bigM, r),
			func(k *physics.Knowns) bool { return k.Get(bigM) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(fGrav) * k.Get(r) * k.Get(r) / (physics.GravitationalConstant * k.Get(bigM))
			}),
		deriveIf(r, "r = sqrt(G*M*m/F_g)", need(bigM, mass, fGrav),
			func(k *physics.Knowns) bool { return k.Get(fGrav) > 0 },
			func(k *physics.Knowns) float64 {
				return math.Sqrt(physics.GravitationalConstant * k.Get(bigM) * k.Get(mass) / k.Get(fGrav))
			}),
		deriveIf(gField, "g = G*M/r^2", need(bigM, r),
			func(k *physics.Knowns) bool { return k.Get(r) != 0 },
			func(k *physics.Knowns) float64 {
				return physics.GravitationalConstant * k.Get(bigM) / (k.Get(r) * k.Get(r))
			}),
		derive(bigM, "M = g*r^2/G", need(gField, r), func(k *physics.Knowns) float64 {
			return k.Get(gField) * k.Get(r) * k.Get(r) / physics.GravitationalConstant
		}),
		deriveIf(r, "r = sqrt(G*M/g)", need(bigM, gField),
			func(k *physics.Knowns) bool { return k.Get(gField) > 0 },
			func(k *physics.Knowns) float64 {
				return math.Sqrt(physics.GravitationalConstant * k.Get(bigM) / k.Get(gField))
			}),
		deriveIf(vOrb, "v_orbital = sqrt(G*M/r)", need(bigM, r),
			func(k *physics.Knowns) bool { return k.Get(r) > 0 },
			func(k *physics.Knowns) float64 {
				return math.Sqrt(physics.GravitationalConstant * k.Get(bigM) / k.Get(r))
			}),
		derive(bigM, "M = v_orbital^2*r/G", need(vOrb, r), func(k *physics.Knowns) float64 {
			return k.Get(vOrb) * k.Get(vOrb) * k.Get(r) / physics.GravitationalConstant
		}),
		deriveIf(r, "r = G*M/v_orbital^2", need(bigM, vOrb),
			func(k *physics.Knowns) bool { return k.Get(vOrb) != 0 },
			func(k *physics.Knowns) float64 {
				return physics.GravitationalConstant * k.Get(bigM) / (k.Get(vOrb) * k.Get(vOrb))
			}),
		deriveIf(period, "T = 2*pi*r/v_orbital", need(r, vOrb),
			func(k *physics.Knowns) bool { return k.Get(vOrb) != 0 },
			func(k *physics.Knowns) float64 {
				return 2 * math.Pi * k.Get(r) / k.Get(vOrb)
			}),
		deriveIf(vOrb, "v_orbital = 2*pi*r/T", need(r, period),
			func(k *physics.Knowns) bool { return k.Get(period) != 0 },
			func(k *physics.Knowns) float64 {
				return 2 * math.Pi * k.Get(r) / k.Get(period)
			}),
		derive(r, "r = v_orbital*T/(2*pi)", need(vOrb, period), func(k *physics.Knowns) float64 {
			return k.Get(vOrb) * k.Get(period) / (2 * math.Pi)
		}),
		derive(alt, "altitude = r - R_earth", need(r), func(k *physics.Knowns) float64 {
			return k.Get(r) - physics.EarthRadius
		}),
		derive(r, "r = altitude + R_earth", need(alt), func(k *physics.Knowns) float64 {
			return k.Get(alt) + physics.EarthRadius
		}),
	},
}
