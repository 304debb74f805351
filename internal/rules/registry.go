package rules

import "github.com/roach88/noether/physics"

var tables = map[physics.Domain]*Table{
	physics.Kinematics:      kinematicsTable,
	physics.Dynamics:        dynamicsTable,
	physics.Projectile:      projectileTable,
	physics.Circular:        circularTable,
	physics.Banked:          bankedTable,
	physics.Gravitation:     gravitationTable,
	physics.Electrostatics:  electrostaticsTable,
	physics.Circuits:        circuitsTable,
	physics.Magnetism:       magnetismTable,
	physics.Wave:            waveTable,
	physics.Sound:           soundTable,
	physics.Light:           lightTable,
	physics.ChargedParticle: chargedParticleTable,
	physics.WireForce:       wireForceTable,
	physics.ParallelWires:   parallelWiresTable,
	physics.Induction:       inductionTable,
	physics.Transformer:     transformerTable,
	physics.Motor:           motorTable,
}

// TableFor returns the rule table of d.
func TableFor(d physics.Domain) (*Table, bool) {
	t, ok := tables[d]
	return t, ok
}
