// Package engine implements the generic fixed-point driver shared by
// every domain solver.
//
// The driver sweeps a domain's rule table in declaration order, firing
// each rule whose output is unset, whose needs are all known, and whose
// guard holds, and repeats until a full sweep changes nothing. Writes to
// the knowns map are monotonic over a finite symbol set, so a
// well-formed table reaches its fixed point in at most |schema| passes.
// The pass ceiling exists to turn a malformed table into a diagnosable
// ConvergenceError instead of an endless loop; it is never hit by
// normal physics.
package engine
