// Package solver is the public entry point of the physics engine.
//
// A solve consumes a domain identifier plus a map of known quantities
// (SI units, external symbol names) and returns the map of every
// quantity the domain's equations can derive from them, or a typed
// error. Solve is pure: no global state, no partial results on
// failure, and input values appear unchanged in the output.
//
// Callers that need provenance use SolveWithTrace, which additionally
// reports each equation firing in order. The per-domain SolveXxx
// helpers are thin wrappers for callers with a compile-time domain.
package solver
