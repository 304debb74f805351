package physics

import "fmt"

// Domain identifies one physics topic with its own symbol schema and rule
// table. The set is closed.
type Domain uint8

const (
	DomainInvalid Domain = iota
	Kinematics
	Dynamics
	Projectile
	Circular
	Banked
	Gravitation
	Electrostatics
	Circuits
	Magnetism
	Wave
	Sound
	Light
	ChargedParticle
	WireForce
	ParallelWires
	Induction
	Transformer
	Motor

	domainCount // sentinel, keep last
)

var domainNames = [domainCount]string{
	DomainInvalid:   "invalid",
	Kinematics:      "kinematics",
	Dynamics:        "dynamics",
	Projectile:      "projectile",
	Circular:        "circular",
	Banked:          "banked",
	Gravitation:     "gravitation",
	Electrostatics:  "electrostatics",
	Circuits:        "circuits",
	Magnetism:       "magnetism",
	Wave:            "wave",
	Sound:           "sound",
	Light:           "light",
	ChargedParticle: "charged_particle",
	WireForce:       "wire_force",
	ParallelWires:   "parallel_wires",
	Induction:       "induction",
	Transformer:     "transformer",
	Motor:           "motor",
}

// String returns the external name of the domain ("kinematics", ...).
func (d Domain) String() string {
	if d >= domainCount {
		return fmt.Sprintf("Domain(%d)", uint8(d))
	}
	return domainNames[d]
}

// Valid reports whether d is a declared domain.
func (d Domain) Valid() bool {
	return d > DomainInvalid && d < domainCount
}

// ParseDomain resolves an external domain name.
func ParseDomain(name string) (Domain, bool) {
	for d := DomainInvalid + 1; d < domainCount; d++ {
		if domainNames[d] == name {
			return d, true
		}
	}
	return DomainInvalid, false
}

// Domains returns all declared domains in declaration order.
func Domains() []Domain {
	out := make([]Domain, 0, int(domainCount)-1)
	for d := DomainInvalid + 1; d < domainCount; d++ {
		out = append(out, d)
	}
	return out
}

// Schema describes one domain's variable set: the ordered symbols, their
// external names, per-symbol constraints, which symbols are angles, seed
// defaults, and the minimum number of known inputs a solve needs.
type Schema struct {
	domain    Domain
	symbols   []Symbol
	byName    map[string]Symbol
	names     map[Symbol]string
	cons      map[Symbol]Constraint
	angles    map[Symbol]bool
	defaults  map[Symbol]float64
	minKnowns int
}

// schemaEntry is one row of a schema declaration.
type schemaEntry struct {
	name  string
	sym   Symbol
	con   Constraint
	angle bool
}

// withDefault marks a symbol that is seeded with a fallback value when the
// caller does not supply it. Defaults do not count toward MinKnowns.
type defaultEntry struct {
	sym Symbol
	val float64
}

func newSchema(d Domain, minKnowns int, entries []schemaEntry, defaults ...defaultEntry) *Schema {
	s := &Schema{
		domain:    d,
		symbols:   make([]Symbol, 0, len(entries)),
		byName:    make(map[string]Symbol, len(entries)),
		names:     make(map[Symbol]string, len(entries)),
		cons:      make(map[Symbol]Constraint, len(entries)),
		angles:    make(map[Symbol]bool),
		defaults:  make(map[Symbol]float64),
		minKnowns: minKnowns,
	}
	for _, e := range entries {
		if !e.sym.Valid() {
			panic(fmt.Sprintf("physics: schema %s declares invalid symbol %q", d, e.name))
		}
		if _, dup := s.byName[e.name]; dup {
			panic(fmt.Sprintf("physics: schema %s declares duplicate name %q", d, e.name))
		}
		if _, dup := s.names[e.sym]; dup {
			panic(fmt.Sprintf("physics: schema %s declares symbol %s twice", d, e.sym))
		}
		s.symbols = append(s.symbols, e.sym)
		s.byName[e.name] = e.sym
		s.names[e.sym] = e.name
		s.cons[e.sym] = e.con
		if e.angle {
			s.angles[e.sym] = true
		}
	}
	for _, def := range defaults {
		if _, ok := s.names[def.sym]; !ok {
			panic(fmt.Sprintf("physics: schema %s default for undeclared symbol %s", d, def.sym))
		}
		s.defaults[def.sym] = def.val
	}
	return s
}

// Domain returns the domain this schema describes.
func (s *Schema) Domain() Domain { return s.domain }

// Symbols returns the schema's symbols in declaration order.
func (s *Schema) Symbols() []Symbol { return s.symbols }

// MinKnowns returns the minimum number of caller-supplied knowns required
// before a solve is attempted.
func (s *Schema) MinKnowns() int { return s.minKnowns }

// Resolve maps an external name to its symbol.
func (s *Schema) Resolve(name string) (Symbol, bool) {
	sym, ok := s.byName[name]
	return sym, ok
}

// NameOf returns the external name of sym within this domain, falling back
// to the canonical name for symbols outside the schema.
func (s *Schema) NameOf(sym Symbol) string {
	if name, ok := s.names[sym]; ok {
		return name
	}
	return sym.String()
}

// Has reports whether sym belongs to the schema.
func (s *Schema) Has(sym Symbol) bool {
	_, ok := s.names[sym]
	return ok
}

// Constraint returns the constraint for sym, if sym is in the schema.
func (s *Schema) Constraint(sym Symbol) (Constraint, bool) {
	c, ok := s.cons[sym]
	return c, ok
}

// IsAngle reports whether sym is an angle in this domain.
func (s *Schema) IsAngle(sym Symbol) bool { return s.angles[sym] }

// Default returns the seed fallback for sym, if one is declared.
func (s *Schema) Default(sym Symbol) (float64, bool) {
	v, ok := s.defaults[sym]
	return v, ok
}

// SchemaFor returns the schema of d.
func SchemaFor(d Domain) (*Schema, bool) {
	if !d.Valid() {
		return nil, false
	}
	return schemas[d], true
}

// Speed constraints: signed velocities stay below c in magnitude,
// non-negative speeds sit in [0, c).
func signedSpeed() Constraint { return AbsBelow(SpeedOfLight) }
func speed() Constraint       { return Constraint{Min: 0, Max: SpeedOfLight, ExclMax: true} }
func angle() Constraint       { return AbsMax(360) }

var schemas = [domainCount]*Schema{
	Kinematics: newSchema(Kinematics, 3, []schemaEntry{
		{"u", SymU, signedSpeed(), false},
		{"v", SymV, signedSpeed(), false},
		{"a", SymA, Unbounded(), false},
		{"s", SymS, Unbounded(), false},
		{"t", SymT, NonNegative(), false},
	}),

	Dynamics: newSchema(Dynamics, 2, []schemaEntry{
		{"F", SymForce, Unbounded(), false},
		{"m", SymMass, Positive(), false},
		{"a", SymA, Unbounded(), false},
		{"v", SymV, signedSpeed(), false},
		{"t", SymT, NonNegative(), false},
		{"s", SymS, Unbounded(), false},
		{"theta", SymTheta, angle(), true},
		{"p", SymMomentum, Unbounded(), false},
		{"J", SymImpulse, Unbounded(), false},
		{"delta_p", SymDeltaMomentum, Unbounded(), false},
		{"W", SymWork, Unbounded(), false},
		{"KE", SymKineticEnergy, NonNegative(), false},
		{"PE", SymPotentialEnergy, Unbounded(), false},
		{"P", SymPower, Unbounded(), false},
		{"mu", SymMu, Range(0, 1.5), false},
		{"F_N", SymNormalForce, NonNegative(), false},
		{"F_f", SymFrictionForce, NonNegative(), false},
		{"F_par", SymParallelForce, Unbounded(), false},
	}, defaultEntry{SymTheta, 0}),

	Projectile: newSchema(Projectile, 2, []schemaEntry{
		{"u", SymU, speed(), false},
		{"theta", SymTheta, angle(), true},
		{"ux", SymUx, signedSpeed(), false},
		{"uy", SymUy, signedSpeed(), false},
		{"t_flight", SymFlightTime, NonNegative(), false},
		{"max_height", SymMaxHeight, NonNegative(), false},
		{"range", SymRange, NonNegative(), false},
	}),

	Circular: newSchema(Circular, 1, []schemaEntry{
		{"v", SymV, speed(), false},
		{"r", SymRadius, Positive(), false},
		{"T", SymPeriod, Positive(), false},
		{"f", SymFrequency, Positive(), false},
		{"omega", SymOmega, Positive(), false},
		{"a_c", SymCentripetalAccel, NonNegative(), false},
		{"F_c", SymCentripetalForce, NonNegative(), false},
		{"m", SymMass, Positive(), false},
	}),

	Banked: newSchema(Banked, 2, []schemaEntry{
		{"theta", SymTheta, angle(), true},
		{"v", SymV, speed(), false},
		{"r", SymRadius, Positive(), false},
		{"mu", SymMu, Range(0, 1.5), false},
		{"v_min", SymVMin, speed(), false},
		{"v_max", SymVMax, speed(), false},
	}),

	Gravitation: newSchema(Gravitation, 2, []schemaEntry{
		{"M", SymCentralMass, Positive(), false},
		{"m", SymMass, Positive(), false},
		{"r", SymRadius, Positive(), false},
		{"F_g", SymGravForce, Positive(), false},
		{"g", SymGravField, Positive(), false},
		{"v_orbital", SymOrbitalSpeed, Constraint{Min: 0, ExclMin: true, Max: SpeedOfLight, ExclMax: true}, false},
		{"T", SymPeriod, Positive(), false},
		{"altitude", SymAltitude, NonNegative(), false},
	}),

	Electrostatics: newSchema(Electrostatics, 2, []schemaEntry{
		{"F", SymForce, Unbounded(), false},
		{"q", SymCharge, Unbounded(), false},
		{"E", SymEField, Unbounded(), false},
		{"V", SymVoltage, Unbounded(), false},
		{"d", SymDistance, Positive(), false},
	}),

	Circuits: newSchema(Circuits, 2, []schemaEntry{
		{"I", SymCurrent, NonNegative(), false},
		{"V", SymVoltage, NonNegative(), false},
		{"R", SymResistance, NonNegative(), false},
		{"P", SymPower, NonNegative(), false},
		{"E_energy", SymEnergy, NonNegative(), false},
		{"t", SymT, NonNegative(), false},
		{"R1", SymR1, NonNegative(), false},
		{"R2", SymR2, NonNegative(), false},
		{"R_series", SymRSeries, NonNegative(), false},
		{"R_parallel", SymRParallel, NonNegative(), false},
	}),

	Magnetism: newSchema(Magnetism, 2, []schemaEntry{
		{"B", SymBField, NonNegative(), false},
		{"I_wire", SymCurrent, NonNegative(), false},
		{"r_wire", SymRadius, Positive(), false},
		{"N", SymTurns, AtLeast(1), false},
		{"L", SymLength, Positive(), false},
	}),

	Wave: newSchema(Wave, 1, []schemaEntry{
		{"v", SymV, Constraint{Min: 0, ExclMin: true, Max: SpeedOfLight}, false},
		{"f", SymFrequency, Positive(), false},
		{"lambda", SymWavelength, Positive(), false},
		{"T", SymPeriod, Positive(), false},
		{"k", SymWaveNumber, Positive(), false},
		{"omega", SymOmega, Positive(), false},
	}),

	Sound: newSchema(Sound, 2, []schemaEntry{
		{"f_observed", SymFObserved, Positive(), false},
		{"f_source", SymFSource, Positive(), false},
		{"v_source", SymVSource, signedSpeed(), false},
		{"v_observer", SymVObserver, signedSpeed(), false},
		{"v_medium", SymVMedium, Positive(), false},
	}, defaultEntry{SymVMedium, SpeedOfSound}),

	Light: newSchema(Light, 2, []schemaEntry{
		{"n1", SymN1, AtLeast(1), false},
		{"n2", SymN2, AtLeast(1), false},
		{"theta1", SymTheta1, angle(), true},
		{"theta2", SymTheta2, angle(), true},
		{"I1", SymIntensity1, NonNegative(), false},
		{"I2", SymIntensity2, NonNegative(), false},
	}),

	ChargedParticle: newSchema(ChargedParticle, 2, []schemaEntry{
		{"F", SymForce, Unbounded(), false},
		{"q", SymCharge, Unbounded(), false},
		{"E", SymEField, Unbounded(), false},
		{"v", SymV, signedSpeed(), false},
		{"B", SymBField, NonNegative(), false},
		{"theta", SymTheta, angle(), true},
	}),

	WireForce: newSchema(WireForce, 2, []schemaEntry{
		{"F", SymForce, Unbounded(), false},
		{"I", SymCurrent, NonNegative(), false},
		{"L", SymLength, Positive(), false},
		{"B", SymBField, NonNegative(), false},
		{"theta", SymTheta, angle(), true},
	}),

	ParallelWires: newSchema(ParallelWires, 2, []schemaEntry{
		{"F_per_length", SymForcePerLength, NonNegative(), false},
		{"I1", SymCurrent1, NonNegative(), false},
		{"I2", SymCurrent2, NonNegative(), false},
		{"r", SymRadius, Positive(), false},
	}),

	Induction: newSchema(Induction, 2, []schemaEntry{
		{"emf", SymEMF, Unbounded(), false},
		{"N", SymTurns, AtLeast(1), false},
		{"delta_phi", SymFluxChange, Unbounded(), false},
		{"delta_t", SymTimeInterval, Positive(), false},
		{"B", SymBField, NonNegative(), false},
		{"A", SymArea, Positive(), false},
		{"theta", SymTheta, angle(), true},
		{"phi", SymFlux, Unbounded(), false},
	}),

	Transformer: newSchema(Transformer, 2, []schemaEntry{
		{"V_p", SymVPrimary, Positive(), false},
		{"V_s", SymVSecondary, Positive(), false},
		{"N_p", SymNPrimary, AtLeast(1), false},
		{"N_s", SymNSecondary, AtLeast(1), false},
		{"I_p", SymIPrimary, Positive(), false},
		{"I_s", SymISecondary, Positive(), false},
	}),

	Motor: newSchema(Motor, 2, []schemaEntry{
		{"torque", SymTorque, Unbounded(), false},
		{"n", SymCoilTurns, AtLeast(1), false},
		{"I", SymCurrent, NonNegative(), false},
		{"A", SymArea, Positive(), false},
		{"B", SymBField, NonNegative(), false},
		{"theta", SymTheta, angle(), true},
	}),
}
