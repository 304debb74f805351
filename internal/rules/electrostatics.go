package rules

import "github.com/roach88/noether/physics"

// electrostaticsTable covers a point charge in a uniform field between
// parallel plates: F = qE and E = V/d.
var electrostaticsTable = &Table{
	Domain: physics.Electrostatics,
	Rules: []Rule{
		derive(force, "F = q*E", need(q, eField), func(k *physics.Knowns) float64 {
			return k.Get(q) * k.Get(eField)
		}),
		deriveIf(q, "q = F/E", need(force, eField),
			func(k *physics.Knowns) bool { return k.Get(eField) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(force) / k.Get(eField) }),
		deriveIf(eField, "E = F/q", need(force, q),
			func(k *physics.Knowns) bool { return k.Get(q) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(force) / k.Get(q) }),
		deriveIf(eField, "E = V/d", need(volt, d),
			func(k *physics.Knowns) bool { return k.Get(d) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(volt) / k.Get(d) }),
		derive(volt, "V = E*d", need(eField, d), func(k *physics.Knowns) float64 {
			return k.Get(eField) * k.Get(d)
		}),
		deriveIf(d, "d = V/E", need(volt, eField),
			func(k *physics.Knowns) bool { return k.Get(eField) != 0 },
			func(k *physics.Knowns) float64 { return k.Get(volt) / k.Get(eField) }),
	},
}
