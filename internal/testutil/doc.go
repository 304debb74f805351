// Package testutil provides deterministic identifiers and clocks for
// tests that exercise the solve-history store.
package testutil
