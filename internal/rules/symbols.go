package rules

import "github.com/roach88/noether/physics"

// Package-local symbol aliases keep the rule tables readable; the
// equation strings, not these identifiers, are what users ever see.
const (
	u      = physics.SymU
	v      = physics.SymV
	a      = physics.SymA
	s      = physics.SymS
	tt     = physics.SymT
	force  = physics.SymForce
	mass   = physics.SymMass
	mom    = physics.SymMomentum
	imp    = physics.SymImpulse
	dp     = physics.SymDeltaMomentum
	work   = physics.SymWork
	ke     = physics.SymKineticEnergy
	pe     = physics.SymPotentialEnergy
	power  = physics.SymPower
	mu     = physics.SymMu
	fNorm  = physics.SymNormalForce
	fFric  = physics.SymFrictionForce
	fPar   = physics.SymParallelForce
	theta  = physics.SymTheta
	ux     = physics.SymUx
	uy     = physics.SymUy
	tFl    = physics.SymFlightTime
	hMax   = physics.SymMaxHeight
	rng    = physics.SymRange
	r      = physics.SymRadius
	period = physics.SymPeriod
	freq   = physics.SymFrequency
	omega  = physics.SymOmega
	aCent  = physics.SymCentripetalAccel
	fCent  = physics.SymCentripetalForce
	vMin   = physics.SymVMin
	vMax   = physics.SymVMax
	bigM   = physics.SymCentralMass
	fGrav  = physics.SymGravForce
	gField = physics.SymGravField
	vOrb   = physics.SymOrbitalSpeed
	alt    = physics.SymAltitude
	q      = physics.SymCharge
	eField = physics.SymEField
	volt   = physics.SymVoltage
	d      = physics.SymDistance
	cur    = physics.SymCurrent
	res    = physics.SymResistance
	r1     = physics.SymR1
	r2     = physics.SymR2
	rSer   = physics.SymRSeries
	rPar   = physics.SymRParallel
	energy = physics.SymEnergy
	b      = physics.SymBField
	turns  = physics.SymTurns
	length = physics.SymLength
	emf    = physics.SymEMF
	dPhi   = physics.SymFluxChange
	dT     = physics.SymTimeInterval
	phi    = physics.SymFlux
	area   = physics.SymArea
	lambda = physics.SymWavelength
	kNum   = physics.SymWaveNumber
	fObs   = physics.SymFObserved
	fSrc   = physics.SymFSource
	vSrc   = physics.SymVSource
	vObs   = physics.SymVObserver
	vMed   = physics.SymVMedium
	n1     = physics.SymN1
	n2     = physics.SymN2
	th1    = physics.SymTheta1
	th2    = physics.SymTheta2
	i1     = physics.SymIntensity1
	i2     = physics.SymIntensity2
	fPerL  = physics.SymForcePerLength
	cur1   = physics.SymCurrent1
	cur2   = physics.SymCurrent2
	vPri   = physics.SymVPrimary
	vSec   = physics.SymVSecondary
	nPri   = physics.SymNPrimary
	nSec   = physics.SymNSecondary
	iPri   = physics.SymIPrimary
	iSec   = physics.SymISecondary
	torque = physics.SymTorque
	coils  = physics.SymCoilTurns
)
