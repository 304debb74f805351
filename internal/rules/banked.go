package rules

import (
	"math"

	"github.com/roach88/noether/physics"
)

// bankedTable covers banked circular tracks: the ideal (no-friction) bank
// relationship and the friction speed envelope.
//
// v_min fires only while tan(theta) >= mu; below that friction alone holds
// the car at rest, so no minimum speed exists. v_max fires only while
// mu*tan(theta) < 1; past that the envelope has no upper bound. Both are
// skips, not errors. The reverse mu forms skip when they would produce a
// negative coefficient.
var bankedTable = &Table{
	Domain: physics.Banked,
	Rules: []Rule{
		deriveIf(theta, "theta = atan(v^2/(g*r))", need(v, r),
			func(k *physics.Knowns) bool { return k.Get(r) != 0 },
			func(k *physics.Knowns) float64 {
				return math.Atan(k.Get(v) * k.Get(v) / (physics.Gravity * k.Get(r)))
			}),
		deriveErr(v, "v = sqrt(g*r*tan(theta))", need(theta, r), func(k *physics.Knowns) (float64, error) {
			rhs := physics.Gravity * k.Get(r) * math.Tan(k.Get(theta))
			if rhs < 0 {
				return 0, impossible(v, "v = sqrt(g*r*tan(theta))", "bank angle is negative")
			}
			return math.Sqrt(rhs), nil
		}),
		deriveIf(vMin, "v_min = sqrt(g*r*(tan(theta) - mu)/(1 + mu*tan(theta)))", need(theta, r, mu),
			func(k *physics.Knowns) bool {
				tan := math.Tan(k.Get(theta))
				return tan-k.Get(mu) >= 0 && 1+k.Get(mu)*tan != 0
			},
			func(k *physics.Knowns) float64 {
				tan := math.Tan(k.Get(theta))
				return math.Sqrt(physics.Gravity * k.Get(r) * (tan - k.Get(mu)) / (1 + k.Get(mu)*tan))
			}),
		deriveIf(vMax, "v_max = sqrt(g*r*(tan(theta) + mu)/(1 - mu*tan(theta)))", need(theta, r, mu),
			func(k *physics.Knowns) bool {
				tan := math.Tan(k.Get(theta))
				return tan+k.Get(mu) >= 0 && 1-k.Get(mu)*tan > 0
			},
			func(k *physics.Knowns) float64 {
				tan := math.Tan(k.Get(theta))
				return math.Sqrt(physics.Gravity * k.Get(r) * (tan + k.Get(mu)) / (1 - k.Get(mu)*tan))
			}),
		deriveIf(mu, "mu = (tan(theta) - v_min^2/(g*r))/(v_min^2/(g*r)*tan(theta) + 1)", need(vMin, theta, r),
			func(k *physics.Knowns) bool {
				if k.Get(r) == 0 {
					return false
				}
				lhs := k.Get(vMin) * k.Get(vMin) / (physics.Gravity * k.Get(r))
				tan := math.Tan(k.Get(theta))
				denom := lhs*tan + 1
				return denom != 0 && (tan-lhs)/denom >= 0
			},
			func(k *physics.Knowns) float64 {
				lhs := k.Get(vMin) * k.Get(vMin) / (physics.Gravity * k.Get(r))
				tan := math.Tan(k.Get(theta))
				return (tan - lhs) / (lhs*tan + 1)
			}),
		deriveIf(mu, "mu = (v_max^2/(g*r) - tan(theta))/(v_max^2/(g*r)*tan(theta) + 1)", need(vMax, theta, r),
			func(k *physics.Knowns) bool {
				if k.Get(r) == 0 {
					return false
				}
				lhs := k.Get(vMax) * k.Get(vMax) / (physics.Gravity * k.Get(r))
				tan := math.Tan(k.Get(theta))
				denom := lhs*tan + 1
				return denom != 0 && (lhs-tan)/denom >= 0
			},
			func(k *physics.Knowns) float64 {
				lhs := k.Get(vMax) * k.Get(vMax) / (physics.Gravity * k.Get(r))
				tan := math.Tan(k.Get(theta))
				return (lhs - tan) / (lhs*tan + 1)
			}),
	},
}
