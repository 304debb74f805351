package rules

import (
	"math"

	"github.com/roach88/noether/physics"
)

// waveTable covers the universal wave relationships between speed,
// frequency, wavelength, period, angular frequency, and wave number.
var waveTable = &Table{
	Domain: physics.Wave,
	Rules: []Rule{
		derive(v, "v = f*lambda", need(freq, lambda), func(k *physics.Knowns) float64 {
			return k.Get(freq) * k.Get(lambda)
		}),
		deriveIf(freq, "f = v/lambda", need(v, lambda),
			func(k *physics.Knowns) bool { return k.Get(lambda) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(v) / k.Get(lambda) }),
		deriveIf(lambda, "lambda = v/f", need(v, freq),
			func(k *physics.Knowns) bool { return k.Get(freq) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(v) / k.Get(freq) }),
		deriveIf(period, "T = 1/f", need(freq),
			func(k *physics.Knowns) bool { return k.Get(freq) != 0 },
			func(k *physics.Knowns) float64 { return 1 / k.Get(freq) }),
		deriveIf(freq, "f = 1/T", need(period),
			func(k *physics.Knowns) bool { return k.Get(period) != 0 },
			func(k *physics.Knowns) float64 { return 1 / k.Get(period) }),
		derive(omega, "omega = 2*pi*f", need(freq), func(k *physics.Knowns) float64 {
			return 2 * math.Pi * k.Get(freq)
		}),
		derive(freq, "f = omega/(2*pi)", need(omega), func(k *physics.Knowns) float64 {
			return k.Get(omega) / (2 * math.Pi)
		}),
		deriveIf(kNum, "k = 2*pi/lambda", need(lambda),
			func(k *physics.Knowns) bool { return k.Get(lambda) != 0 },
			func(k *physics.Knowns) float64 { return 2 * math.Pi / k.Get(lambda) }),
		deriveIf(lambda, "lambda = 2*pi/k", need(kNum),
			func(k *physics.Knowns) bool { return k.Get(kNum) != 0 },
			func(k *physics.Knowns) float64 { return 2 * math.Pi / k.Get(kNum) }),
	},
}
