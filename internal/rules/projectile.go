package rules

import (
	"math"

	"github.com/roach88/noether/physics"
)

// projectileTable covers launch decomposition and the level-ground flight
// relationships. Launches from and landing at the same height are assumed,
// as the range and flight-time formulas require.
var projectileTable = &Table{
	Domain: physics.Projectile,
	Rules: []Rule{
		derive(ux, "ux = u*cos(theta)", need(u, theta), func(k *physics.Knowns) float64 {
			return k.Get(u) * math.Cos(k.Get(theta))
		}),
		derive(uy, "uy = u*sin(theta)", need(u, theta), func(k *physics.Knowns) float64 {
			return k.Get(u) * math.Sin(k.Get(theta))
		}),
		derive(u, "u = sqrt(ux^2 + uy^2)", need(ux, uy), func(k *physics.Knowns) float64 {
			return math.Hypot(k.Get(ux), k.Get(uy))
		}),
		derive(theta, "theta = atan2(uy, ux)", need(ux, uy), func(k *physics.Knowns) float64 {
			return math.Atan2(k.Get(uy), k.Get(ux))
		}),
		derive(tFl, "t_flight = 2*uy/g", need(uy), func(k *physics.Knowns) float64 {
			return 2 * k.Get(uy) / physics.Gravity
		}),
		derive(uy, "uy = g*t_flight/2", need(tFl), func(k *physics.Knowns) float64 {
			return physics.Gravity * k.Get(tFl) / 2
		}),
		derive(hMax, "max_height = uy^2/(2*g)", need(uy), func(k *physics.Knowns) float64 {
			return k.Get(uy) * k.Get(uy) / (2 * physics.Gravity)
		}),
		derive(uy, "uy = sqrt(2*g*max_height)", need(hMax), func(k *physics.Knowns) float64 {
			return math.Sqrt(2 * physics.Gravity * k.Get(hMax))
		}),
		derive(rng, "range = ux*t_flight", need(ux, tFl), func(k *physics.Knowns) float64 {
			return k.Get(ux) * k.Get(tFl)
		}),
		deriveIf(ux, "ux = range/t_flight", need(rng, tFl),
			func(k *physics.Knowns) bool { return k.Get(tFl) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(rng) / k.Get(tFl) }),
		deriveIf(tFl, "t_flight = range/ux", need(rng, ux),
			func(k *physics.Knowns) bool { return k.Get(ux) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(rng) / k.Get(ux) }),
	},
}
