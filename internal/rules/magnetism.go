package rules

import (
	"math"

	"github.com/roach88/noether/physics"
)

// magnetismTable covers the field of a long straight wire and of a
// solenoid. The two sub-cases are mutually exclusive: the wire form needs
// r_wire, the solenoid form needs N and L, and when a problem supplies
// both the wire form wins by declaration order.
var magnetismTable = &Table{
	Domain: physics.Magnetism,
	Rules: []Rule{
		// Straight wire
		deriveIf(b, "B = mu_0*I/(2*pi*r_wire)", need(cur, r),
			func(k *physics.Knowns) bool { return k.Get(r) != 0 },
			func(k *physics.Knowns) float64 {
				return physics.VacuumPermeability * k.Get(cur) / (2 * math.Pi * k.Get(r))
			}),
		derive(cur, "I_wire = 2*pi*r_wire*B/mu_0", need(b, r), func(k *physics.Knowns) float64 {
			return 2 * math.Pi * k.Get(r) * k.Get(b) / physics.VacuumPermeability
		}),
		deriveIf(r, "r_wire = mu_0*I/(2*pi*B)", need(cur, b),
			func(k *physics.Knowns) bool { return k.Get(b) != 0 },
			func(k *physics.Knowns) float64 {
				return physics.VacuumPermeability * k.Get(cur) / (2 * math.Pi * k.Get(b))
			}),

		// Solenoid
		deriveIf(b, "B = mu_0*N*I/L", need(turns, cur, length),
			func(k *physics.Knowns) bool { return k.Get(length) != 0 },
			func(k *physics.Knowns) float64 {
				return physics.VacuumPermeability * k.Get(turns) * k.Get(cur) / k.Get(length)
			}),
		deriveIf(cur, "I_wire = B*L/(mu_0*N)", need(b, length, turns),
			func(k *physics.Knowns) bool { return k.Get(turns) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(b) * k.Get(length) / (physics.VacuumPermeability * k.Get(turns))
			}),
		deriveIf(turns, "N = B*L/(mu_0*I)", need(b, length, cur),
			func(k *physics.Knowns) bool { return k.Get(cur) != 0 },
			func(k *physics.Knowns) float64 {
				return k.Get(b) * k.Get(length) / (physics.VacuumPermeability * k.Get(cur))
			}),
		deriveIf(length, "L = mu_0*N*I/B", need(turns, cur, b),
			func(k *physics.Knowns) bool { return k.Get(b) != 0 },
			func(k *physics.Knowns) float64 {
				return physics.VacuumPermeability * k.Get(turns) * k.Get(cur) / k.Get(b)
			}),
	},
}
