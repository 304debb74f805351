package solver

import "github.com/roach88/noether/physics"

// Per-domain wrappers for callers with a compile-time domain.

// SolveKinematics solves one-dimensional motion {u, v, a, s, t}.
func SolveKinematics(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.Kinematics, inputs)
}

// SolveDynamics solves forces, energy, and momentum
// {F, m, a, v, t, s, theta, p, J, W, KE, PE, P, mu, F_N, F_f, F_par}.
func SolveDynamics(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.Dynamics, inputs)
}

// SolveProjectile solves ideal projectile motion
// {u, theta, ux, uy, t_flight, max_height, range}.
func SolveProjectile(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.Projectile, inputs)
}

// SolveCircular solves uniform circular motion
// {v, r, T, f, omega, a_c, F_c, m}.
func SolveCircular(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.Circular, inputs)
}

// SolveBanked solves banked curve speeds {theta, v, r, mu, v_min, v_max}.
func SolveBanked(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.Banked, inputs)
}

// SolveGravitation solves Newtonian gravity and circular orbits
// {M, m, r, F_g, g, v_orbital, T, altitude}.
func SolveGravitation(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.Gravitation, inputs)
}

// SolveElectrostatics solves uniform-field electrostatics {F, q, E, V, d}.
func SolveElectrostatics(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.Electrostatics, inputs)
}

// SolveCircuits solves DC circuits
// {I, V, R, P, E_energy, t, R1, R2, R_series, R_parallel}.
func SolveCircuits(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.Circuits, inputs)
}

// SolveMagnetism solves wire and solenoid fields {B, I_wire, r_wire, N, L}.
func SolveMagnetism(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.Magnetism, inputs)
}

// SolveWave solves the wave relations {v, f, lambda, T, k, omega}.
func SolveWave(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.Wave, inputs)
}

// SolveSound solves the straight-line Doppler effect
// {f_observed, f_source, v_source, v_observer, v_medium}.
func SolveSound(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.Sound, inputs)
}

// SolveLight solves refraction and intensity
// {n1, n2, theta1, theta2, I1, I2}.
func SolveLight(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.Light, inputs)
}

// SolveChargedParticle solves forces on a moving charge
// {F, q, E, v, B, theta}.
func SolveChargedParticle(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.ChargedParticle, inputs)
}

// SolveWireForce solves the force on a current-carrying wire
// {F, I, L, B, theta}.
func SolveWireForce(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.WireForce, inputs)
}

// SolveParallelWires solves the force between parallel currents
// {F_per_length, I1, I2, r}.
func SolveParallelWires(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.ParallelWires, inputs)
}

// SolveInduction solves flux and induced emf
// {emf, N, delta_phi, delta_t, B, A, theta, phi}.
func SolveInduction(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.Induction, inputs)
}

// SolveTransformer solves the ideal transformer
// {V_p, V_s, N_p, N_s, I_p, I_s}.
func SolveTransformer(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.Transformer, inputs)
}

// SolveMotor solves coil torque {torque, n, I, A, B, theta}.
func SolveMotor(inputs map[string]float64) (map[string]float64, error) {
	return Solve(physics.Motor, inputs)
}
