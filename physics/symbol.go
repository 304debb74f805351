package physics

import "fmt"

// Symbol identifies one physical quantity. The set is closed: every symbol
// any domain can read or derive is declared here, and rule tables reference
// these constants directly, giving compile-time coverage checks.
//
// A Symbol is shared across domains when the underlying quantity is the
// same kind of thing (a speed, a radius, a current); the external string
// name is domain-specific and lives in the Schema.
type Symbol uint8

const (
	// SymInvalid is the zero value and never appears in a schema.
	SymInvalid Symbol = iota

	// Linear motion.
	SymU // initial velocity
	SymV // velocity or speed
	SymA // acceleration
	SymS // displacement
	SymT // elapsed time

	// Forces and energy.
	SymForce
	SymMass
	SymMomentum
	SymImpulse
	SymDeltaMomentum
	SymWork
	SymKineticEnergy
	SymPotentialEnergy
	SymPower
	SymMu            // coefficient of friction
	SymNormalForce
	SymFrictionForce
	SymParallelForce // component of weight along an incline
	SymTheta         // generic angle

	// Projectile motion.
	SymUx
	SymUy
	SymFlightTime
	SymMaxHeight
	SymRange

	// Circular motion.
	SymRadius
	SymPeriod
	SymFrequency
	SymOmega
	SymCentripetalAccel
	SymCentripetalForce

	// Banked tracks.
	SymVMin
	SymVMax

	// Gravitation.
	SymCentralMass
	SymGravForce
	SymGravField
	SymOrbitalSpeed
	SymAltitude

	// Electrostatics.
	SymCharge
	SymEField
	SymVoltage
	SymDistance

	// Circuits.
	SymCurrent
	SymResistance
	SymR1
	SymR2
	SymRSeries
	SymRParallel
	SymEnergy

	// Magnetism and induction.
	SymBField
	SymTurns
	SymLength
	SymEMF
	SymFluxChange
	SymTimeInterval
	SymFlux
	SymArea

	// Waves.
	SymWavelength
	SymWaveNumber

	// Doppler.
	SymFObserved
	SymFSource
	SymVSource
	SymVObserver
	SymVMedium

	// Refraction and intensity.
	SymN1
	SymN2
	SymTheta1
	SymTheta2
	SymIntensity1
	SymIntensity2

	// Parallel wires.
	SymForcePerLength
	SymCurrent1
	SymCurrent2

	// Transformers.
	SymVPrimary
	SymVSecondary
	SymNPrimary
	SymNSecondary
	SymIPrimary
	SymISecondary

	// Motors.
	SymTorque
	SymCoilTurns

	symbolCount // sentinel, keep last
)

// NumSymbols is the size of the closed symbol set, excluding SymInvalid.
const NumSymbols = int(symbolCount) - 1

// symbolNames holds the canonical (domain-neutral) name per symbol, used in
// logs and internal diagnostics. Domain-facing names come from the Schema.
var symbolNames = [symbolCount]string{
	SymInvalid:          "invalid",
	SymU:                "u",
	SymV:                "v",
	SymA:                "a",
	SymS:                "s",
	SymT:                "t",
	SymForce:            "F",
	SymMass:             "m",
	SymMomentum:         "p",
	SymImpulse:          "J",
	SymDeltaMomentum:    "delta_p",
	SymWork:             "W",
	SymKineticEnergy:    "KE",
	SymPotentialEnergy:  "PE",
	SymPower:            "P",
	SymMu:               "mu",
	SymNormalForce:      "F_N",
	SymFrictionForce:    "F_f",
	SymParallelForce:    "F_par",
	SymTheta:            "theta",
	SymUx:               "ux",
	SymUy:               "uy",
	SymFlightTime:       "t_flight",
	SymMaxHeight:        "max_height",
	SymRange:            "range",
	SymRadius:           "r",
	SymPeriod:           "T",
	SymFrequency:        "f",
	SymOmega:            "omega",
	SymCentripetalAccel: "a_c",
	SymCentripetalForce: "F_c",
	SymVMin:             "v_min",
	SymVMax:             "v_max",
	SymCentralMass:      "M",
	SymGravForce:        "F_g",
	SymGravField:        "g",
	SymOrbitalSpeed:     "v_orbital",
	SymAltitude:         "altitude",
	SymCharge:           "q",
	SymEField:           "E",
	SymVoltage:          "V",
	SymDistance:         "d",
	SymCurrent:          "I",
	SymResistance:       "R",
	SymR1:               "R1",
	SymR2:               "R2",
	SymRSeries:          "R_series",
	SymRParallel:        "R_parallel",
	SymEnergy:           "E_energy",
	SymBField:           "B",
	SymTurns:            "N",
	SymLength:           "L",
	SymEMF:              "emf",
	SymFluxChange:       "delta_phi",
	SymTimeInterval:     "delta_t",
	SymFlux:             "phi",
	SymArea:             "A",
	SymWavelength:       "lambda",
	SymWaveNumber:       "k",
	SymFObserved:        "f_observed",
	SymFSource:          "f_source",
	SymVSource:          "v_source",
	SymVObserver:        "v_observer",
	SymVMedium:          "v_medium",
	SymN1:               "n1",
	SymN2:               "n2",
	SymTheta1:           "theta1",
	SymTheta2:           "theta2",
	SymIntensity1:       "I1",
	SymIntensity2:       "I2",
	SymForcePerLength:   "F_per_length",
	SymCurrent1:         "I1",
	SymCurrent2:         "I2",
	SymVPrimary:         "V_p",
	SymVSecondary:       "V_s",
	SymNPrimary:         "N_p",
	SymNSecondary:       "N_s",
	SymIPrimary:         "I_p",
	SymISecondary:       "I_s",
	SymTorque:           "torque",
	SymCoilTurns:        "n",
}

// String returns the canonical name of the symbol.
func (s Symbol) String() string {
	if s >= symbolCount {
		return fmt.Sprintf("Symbol(%d)", uint8(s))
	}
	return symbolNames[s]
}

// Valid reports whether s is a declared symbol (not SymInvalid, not out of
// range).
func (s Symbol) Valid() bool {
	return s > SymInvalid && s < symbolCount
}
