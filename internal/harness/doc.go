// Package harness runs YAML conformance scenarios against the solver.
//
// A scenario names a domain, a set of known inputs, and an expectation:
// either derived values within a tolerance, or a specific error kind.
// On top of the per-scenario expectations the harness checks two
// cross-cutting properties on every successful solve: monotonicity
// (inputs appear unchanged in the output) and idempotence (re-solving
// the output reproduces it).
package harness
