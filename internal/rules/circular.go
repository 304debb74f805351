package rules

import (
	"math"

	"github.com/roach88/noether/physics"
)

// circularTable covers uniform circular motion: angular kinematics,
// centripetal acceleration, and centripetal force.
var circularTable = &Table{
	Domain: physics.Circular,
	Rules: []Rule{
		deriveIf(omega, "omega = 2*pi/T", need(period),
			func(k *physics.Knowns) bool { return k.Get(period) != 0 },
			func(k *physics.Knowns) float64 { return 2 * math.Pi / k.Get(period) }),
		deriveIf(period, "T = 2*pi/omega", need(omega),
			func(k *physics.Knowns) bool { return k.Get(omega) != 0 },
			func(k *physics.Knowns) float64 { return 2 * math.Pi / k.Get(omega) }),
		derive(omega, "omega = 2*pi*f", need(freq), func(k *physics.Knowns) float64 {
			return 2 * math.Pi * k.Get(freq)
		}),
		derive(freq, "f = omega/(2*pi)", need(omega), func(k *physics.Knowns) float64 {
			return k.Get(omega) / (2 * math.Pi)
		}),
		deriveIf(freq, "f = 1/T", need(period),
			func(k *physics.Knowns) bool { return k.Get(period) != 0 },
			func(k *physics.Knowns) float64 { return 1 / k.Get(period) }),
		deriveIf(period, "T = 1/f", need(freq),
			func(k *physics.Knowns) bool { return k.Get(freq) != 0 },
			func(k *physics.Knowns) float64 { return 1 / k.Get(freq) }),
		derive(v, "v = omega*r", need(omega, r), func(k *physics.Knowns) float64 {
			return k.Get(omega) * k.Get(r)
		}),
		deriveIf(omega, "omega = v/r", need(v, r),
			func(k *physics.Knowns) bool { return k.Get(r) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(v) / k.Get(r) }),
		deriveIf(r, "r = v/omega", need(v, omega),
			func(k *physics.Knowns) bool { return k.Get(omega) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(v) / k.Get(omega) }),
		deriveIf(aCent, "a_c = v^2/r", need(v, r),
			func(k *physics.Knowns) bool { return k.Get(r) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(v) * k.Get(v) / k.Get(r) }),
		deriveIf(v, "v = sqrt(a_c*r)", need(aCent, r),
			func(k *physics.Knowns) bool { return k.Get(aCent)*k.Get(r) >= 0 },
			func(k *physics.Knowns) float64 { return math.Sqrt(k.Get(aCent) * k.Get(r)) }),
		deriveIf(r, "r = v^2/a_c", need(v, aCent),
			func(k *physics.Knowns) bool { return k.Get(aCent) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(v) * k.Get(v) / k.Get(aCent) }),
		derive(fCent, "F_c = m*a_c", need(mass, aCent), func(k *physics.Knowns) float64 {
			return k.Get(mass) * k.Get(aCent)
		}),
		deriveIf(mass, "m = F_c/a_c", need(fCent, aCent),
			func(k *physics.Knowns) bool { return k.Get(aCent) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(fCent) / k.Get(aCent) }),
		deriveIf(aCent, "a_c = F_c/m", need(fCent, mass),
			func(k *physics.Knowns) bool { return k.Get(mass) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(fCent) / k.Get(mass) }),
	},
}
