// Package rules defines the per-domain derivation rule tables.
//
// Each physics domain has one ordered table of bidirectional formula
// rules. A rule names the symbol it derives, the symbols it needs, an
// applicability guard, and a compute closure. Rules are pure: they read
// knowns, return a value, and never retain state.
//
// Evaluation order is declaration order within a table, and the driver
// fires each output at most once per solve, so results are deterministic
// for a fixed table.
//
// Guards express "not applicable" (zero divisor with other routes open,
// sub-case selection); compute errors express "physically impossible"
// (negative discriminant, |sin| > 1, undefined Doppler shift). The two are
// deliberately distinct: a failed guard skips one rule, a compute error
// aborts the whole solve.
package rules
