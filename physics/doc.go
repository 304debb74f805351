// Package physics provides the shared vocabulary types for the noether
// solver: quantity symbols, domain schemas, the knowns map, per-symbol
// constraints, and physical constants.
//
// This package contains type definitions and static tables only. All other
// packages import physics; physics imports nothing from this module. This
// keeps it the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Symbol and Domain are closed enums; neither is extensible at runtime
//   - Knowns is write-once: a symbol's value is set at most once per solve
//   - Schemas carry per-domain string names, so the same Symbol can appear
//     under different external names in different domains ("d" vs "r")
//   - All values are SI; angle normalization happens at the solver boundary
package physics
