package physics

import "math"

// Physical constants in SI units. Values match the ones the HSC syllabus
// data sheet rounds to (g, c, sound speed) or CODATA where the syllabus
// does not round (G, mu_0, epsilon_0, e).
const (
	// Gravity is the magnitude of acceleration due to gravity at the
	// Earth's surface, m/s^2.
	Gravity = 9.81

	// GravitationalConstant is Newton's G, N*m^2/kg^2.
	GravitationalConstant = 6.67430e-11

	// EarthRadius is the mean radius of the Earth, m.
	EarthRadius = 6.371e6

	// SpeedOfLight is c rounded to syllabus precision, m/s.
	SpeedOfLight = 3e8

	// SpeedOfSound is the default sound speed in air at 20 C, m/s.
	// Doppler rules fall back to this when no medium speed is given.
	SpeedOfSound = 343.0

	// VacuumPermeability is mu_0, T*m/A.
	VacuumPermeability = 4e-7 * math.Pi

	// VacuumPermittivity is epsilon_0, F/m.
	VacuumPermittivity = 8.8541878128e-12

	// ElementaryCharge is e, C.
	ElementaryCharge = 1.602176634e-19
)
