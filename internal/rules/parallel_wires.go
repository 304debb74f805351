package rules

import (
	"math"

	"github.com/roach88/noether/physics"
)

// parallelWiresTable covers the force per unit length between two long
// parallel wires, F/l = mu_0*I1*I2/(2*pi*r).
var parallelWiresTable = &Table{
	Domain: physics.ParallelWires,
	Rules: []Rule{
		deriveIf(fPerL, "F_per_length = mu_0*I1*I2/(2*pi*r)", need(cur1, cur2, r),
			func(k *physics.Knowns) bool { return k.Get(r) != 0 },
			func(k *physics.Knowns) float64 {
				return physics.VacuumPermeability * k.Get(cur1) * k.Get(cur2) / (2 * math.Pi * k.Get(r))
			}),
		deriveIf(cur1, "I1 = 2*pi*r*F_per_length/(mu_0*I2)", need(fPerL, cur2, r),
			func(k *physics.Knowns) bool { return k.Get(cur2) != 0 },
			func(k *physics.Knowns) float64 {
				return 2 * math.Pi * k.Get(r) * k.Get(fPerL) / (physics.VacuumPermeability * k.Get(cur2))
			}),
		deriveIf(cur2, "I2 = 2*pi*r*F_per_length/(mu_0*I1)", need(fPerL, cur1, r),
			func(k *physics.Knowns) bool { return k.Get(cur1) != 0 },
			func(k *physics.Knowns) float64 {
				return 2 * math.Pi * k.Get(r) * k.Get(fPerL) / (physics.VacuumPermeability * k.Get(cur1))
			}),
		deriveIf(r, "r = mu_0*I1*I2/(2*pi*F_per_length)", need(fPerL, cur1, cur2),
			func(k *physics.Knowns) bool { return k.Get(fPerL) != 0 },
			func(k *physics.Knowns) float64 {
				return physics.VacuumPermeability * k.Get(cur1) * k.Get(cur2) / (2 * math.Pi * k.Get(fPerL))
			}),
	},
}
