package rules

import (
	"math"

	"github.com/roach88/noether/physics"
)

// circuitsTable covers Ohm's law, the three power forms, electrical
// energy, and two-resistor series/parallel combination.
var circuitsTable = &Table{
	Domain: physics.Circuits,
	Rules: []Rule{
		// Ohm's law
		derive(volt, "V = I*R", need(cur, res), func(k *physics.Knowns) float64 {
			return k.Get(cur) * k.Get(res)
		}),
		deriveIf(cur, "I = V/R", need(volt, res),
			func(k *physics.Knowns) bool { return k.Get(res) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(volt) / k.Get(res) }),
		deriveIf(res, "R = V/I", need(volt, cur),
			func(k *physics.Knowns) bool { return k.Get(cur) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(volt) / k.Get(cur) }),

		// Power
		derive(power, "P = V*I", need(volt, cur), func(k *physics.Knowns) float64 {
			return k.Get(volt) * k.Get(cur)
		}),
		deriveIf(volt, "V = P/I", need(power, cur),
			func(k *physics.Knowns) bool { return k.Get(cur) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(power) / k.Get(cur) }),
		deriveIf(cur, "I = P/V", need(power, volt),
			func(k *physics.Knowns) bool { return k.Get(volt) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(power) / k.Get(volt) }),
		derive(power, "P = I^2*R", need(cur, res), func(k *physics.Knowns) float64 {
			return k.Get(cur) * k.Get(cur) * k.Get(res)
		}),
		deriveIf(res, "R = P/I^2", need(power, cur),
			func(k *physics.Knowns) bool { return k.Get(cur) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(power) / (k.Get(cur) * k.Get(cur)) }),
		deriveIf(cur, "I = sqrt(P/R)", need(power, res),
			func(k *physics.Knowns) bool { return k.Get(res) != 0 && k.Get(power)/k.Get(res) >= 0 },
			func(k *physics.Knowns) float64 { return math.Sqrt(k.Get(power) / k.Get(res)) }),
		deriveIf(power, "P = V^2/R", need(volt, res),
			func(k *physics.Knowns) bool { return k.Get(res) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(volt) * k.Get(volt) / k.Get(res) }),
		deriveIf(res, "R = V^2/P", need(volt, power),
			func(k *physics.Knowns) bool { return k.Get(power) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(volt) * k.Get(volt) / k.Get(power) }),
		deriveIf(volt, "V = sqrt(P*R)", need(power, res),
			func(k *physics.Knowns) bool { return k.Get(power)*k.Get(res) >= 0 },
			func(k *physics.Knowns) float64 { return math.Sqrt(k.Get(power) * k.Get(res)) }),

		// Energy
		derive(energy, "E_energy = P*t", need(power, tt), func(k *physics.Knowns) float64 {
			return k.Get(power) * k.Get(tt)
		}),
		deriveIf(power, "P = E_energy/t", need(energy, tt),
			func(k *physics.Knowns) bool { return k.Get(tt) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(energy) / k.Get(tt) }),
		deriveIf(tt, "t = E_energy/P", need(energy, power),
			func(k *physics.Knowns) bool { return k.Get(power) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(energy) / k.Get(power) }),

		// Two-resistor combinations
		derive(rSer, "R_series = R1 + R2", need(r1, r2), func(k *physics.Knowns) float64 {
			return k.Get(r1) + k.Get(r2)
		}),
		derive(r1, "R1 = R_series - R2", need(rSer, r2), func(k *physics.Knowns) float64 {
			return k.Get(rSer) - k.Get(r2)
		}),
		derive(r2, "R2 = R_series - R1", need(rSer, r1), func(k *physics.Knowns) float64 {
			return k.Get(rSer) - k.Get(r1)
		}),
		deriveIf(rPar, "R_parallel = R1*R2/(R1 + R2)", need(r1, r2),
			func(k *physics.Knowns) bool { return k.Get(r1)+k.Get(r2) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(r1) * k.Get(r2) / (k.Get(r1) + k.Get(r2))
			}),
		deriveIf(r1, "R1 = R_parallel*R2/(R2 - R_parallel)", need(rPar, r2),
			func(k *physics.Knowns) bool { return k.Get(r2)-k.Get(rPar) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(rPar) * k.Get(r2) / (k.Get(r2) - k.Get(rPar))
			}),
		deriveIf(r2, "R2 = R_parallel*R1/(R1 - R_parallel)", need(rPar, r1),
			func(k *physics.Knowns) bool { return k.Get(r1)-k.Get(rPar) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(rPar) * k.Get(r1) / (k.Get(r1) - k.Get(rPar))
			}),
	},
}
