package rules

import (
	"math"

	"github.com/roach88/noether/physics"
)

// motorTable covers the torque on a current loop, tau = n*I*A*B*sin(theta).
var motorTable = &Table{
	Domain: physics.Motor,
	Rules: []Rule{
		derive(torque, "torque = n*I*A*B*sin(theta)", need(coils, cur, area, b, theta),
			func(k *physics.Knowns) float64 {
				return k.Get(coils) * k.Get(cur) * k.Get(area) * k.Get(b) * math.Sin(k.Get(theta))
			}),
		deriveIf(coils, "n = torque/(I*A*B*sin(theta))", need(torque, cur, area, b, theta),
			func(k *physics.Knowns) bool {
				return k.Get(cur)*k.Get(area)*k.Get(b)*math.Sin(k.Get(theta)) != 0
			},
			func(k *physics.Knowns) float64 {
				return k.Get(torque) / (k.Get(cur) * k.Get(area) * k.Get(b) * math.Sin(k.Get(theta)))
			}),
		deriveIf(cur, "I = torque/(n*A*B*sin(theta))", need(torque, coils, area, b, theta),
			func(k *physics.Knowns) bool {
				return k.Get(coils)*k.Get(area)*k.Get(b)*math.Sin(k.Get(theta)) != 0
			},
			func(k *physics.Knowns) float64 {
				return k.Get(torque) / (k.Get(coils) * k.Get(area) * k.Get(b) * math.Sin(k.Get(theta)))
			}),
		deriveIf(area, "A = torque/(n*I*B*sin(theta))", need(torque, coils, cur, b, theta),
			func(k *physics.Knowns) bool {
				return k.Get(coils)*k.Get(cur)*k.Get(b)*math.Sin(k.Get(theta)) != 0
			},
			func(k *physics.Knowns) float64 {
				return k.Get(torque) / (k.Get(coils) * k.Get(cur) * k.Get(b) * math.Sin(k.Get(theta)))
			}),
		deriveIf(b, "B = torque/(n*I*A*sin(theta))", need(torque, coils, cur, area, theta),
			func(k *physics.Knowns) bool {
				return k.Get(coils)*k.Get(cur)*k.Get(area)*math.Sin(k.Get(theta)) != 0
			},
			func(k *physics.Knowns) float64 {
				return k.Get(torque) / (k.Get(coils) * k.Get(cur) * k.Get(area) * math.Sin(k.Get(theta)))
			}),
		deriveErr(theta, "theta = asin(torque/(n*I*A*B))", need(torque, coils, cur, area, b),
			func(k *physics.Knowns) (float64, error) {
				const eq = "theta = asin(torque/(n*I*A*B))"
				denom := k.Get(coils) * k.Get(cur) * k.Get(area) * k.Get(b)
				if denom == 0 {
					return 0, divZero(theta, eq)
				}
				ratio := k.Get(torque) / denom
				if math.Abs(ratio) > 1 {
					return 0, impossible(theta, eq, "torque exceeds n*I*A*B")
				}
				return math.Asin(ratio), nil
			}),
	},
}
