package rules

import (
	"math"

	"github.com/roach88/noether/physics"
)

// wireForceTable covers the force on a straight current-carrying wire in
// a uniform field, F = B*I*L*sin(theta).
var wireForceTable = &Table{
	Domain: physics.WireForce,
	Rules: []Rule{
		derive(force, "F = B*I*L*sin(theta)", need(b, cur, length, theta), func(k *physics.Knowns) float64 {
			return k.Get(b) * k.Get(cur) * k.Get(length) * math.Sin(k.Get(theta))
		}),
		deriveIf(cur, "I = F/(B*L*sin(theta))", need(force, b, length, theta),
			func(k *physics.Knowns) bool {
				return k.Get(b)*k.Get(length)*math.Sin(k.Get(theta)) != 0
			},
			func(k *physics.Knowns) float64 {
				return k.Get(force) / (k.Get(b) * k.Get(length) * math.Sin(k.Get(theta)))
			}),
		deriveIf(length, "L = F/(B*I*sin(theta))", need(force, b, cur, theta),
			func(k *physics.Knowns) bool {
				return k.Get(b)*k.Get(cur)*math.Sin(k.Get(theta)) != 0
			},
			func(k *physics.Knowns) float64 {
				return k.Get(force) / (k.Get(b) * k.Get(cur) * math.Sin(k.Get(theta)))
			}),
		deriveIf(b, "B = F/(I*L*sin(theta))", need(force, cur, length, theta),
			func(k *physics.Knowns) bool {
				return k.Get(cur)*k.Get(length)*math.Sin(k.Get(theta)) != 0
			},
			func(k *physics.Knowns) float64 {
				return k.Get(force) / (k.Get(cur) * k.Get(length) * math.Sin(k.Get(theta)))
			}),
		deriveErr(theta, "theta = asin(F/(B*I*L))", need(force, b, cur, length),
			func(k *physics.Knowns) (float64, error) {
				const eq = "theta = asin(F/(B*I*L))"
				denom := k.Get(b) * k.Get(cur) * k.Get(length)
				if denom == 0 {
					return 0, divZero(theta, eq)
				}
				ratio := k.Get(force) / denom
				if math.Abs(ratio) > 1 {
					return 0, impossible(theta, eq, "force exceeds B*I*L")
				}
				return math.Asin(ratio), nil
			}),
	},
}
