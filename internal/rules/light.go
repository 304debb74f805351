package rules

import (
	"math"

	"github.com/roach88/noether/physics"
)

// lightTable covers refraction at a plane boundary: Snell's law and the
// index-weighted intensity ratio I1/I2 = n2/n1. Angles are radians from
// the normal. A refraction ratio past 1 in magnitude means the ray
// cannot cross the boundary at all.
var lightTable = &Table{
	Domain: physics.Light,
	Rules: []Rule{
		deriveErr(th2, "theta2 = asin(n1*sin(theta1)/n2)", need(n1, n2, th1),
			func(k *physics.Knowns) (float64, error) {
				const eq = "theta2 = asin(n1*sin(theta1)/n2)"
				if k.Get(n2) == 0 {
					return 0, divZero(th2, eq)
				}
				ratio := k.Get(n1) * math.Sin(k.Get(th1)) / k.Get(n2)
				if math.Abs(ratio) > 1 {
					return 0, impossible(th2, eq, "total internal reflection")
				}
				return math.Asin(ratio), nil
			}),
		deriveErr(th1, "theta1 = asin(n2*sin(theta2)/n1)", need(n1, n2, th2),
			func(k *physics.Knowns) (float64, error) {
				const eq = "theta1 = asin(n2*sin(theta2)/n1)"
				if k.Get(n1) == 0 {
					return 0, divZero(th1, eq)
				}
				ratio := k.Get(n2) * math.Sin(k.Get(th2)) / k.Get(n1)
				if math.Abs(ratio) > 1 {
					return 0, impossible(th1, eq, "total internal reflection")
				}
				return math.Asin(ratio), nil
			}),
		deriveIf(n2, "n2 = n1*sin(theta1)/sin(theta2)", need(n1, th1, th2),
			func(k *physics.Knowns) bool { return math.Sin(k.Get(th2)) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(n1) * math.Sin(k.Get(th1)) / math.Sin(k.Get(th2))
			}),
		deriveIf(n1, "n1 = n2*sin(theta2)/sin(theta1)", need(n2, th1, th2),
			func(k *physics.Knowns) bool { return math.Sin(k.Get(th1)) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(n2) * math.Sin(k.Get(th2)) / math.Sin(k.Get(th1))
			}),
		deriveIf(i1, "I1 = I2*n2/n1", need(i2, n1, n2),
			func(k *physics.Knowns) bool { return k.Get(n1) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(i2) * k.Get(n2) / k.Get(n1)
			}),
		deriveIf(i2, "I2 = I1*n1/n2", need(i1, n1, n2),
			func(k *physics.Knowns) bool { return k.Get(n2) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(i1) * k.Get(n1) / k.Get(n2)
			}),
	},
}
