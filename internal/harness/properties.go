package harness

import (
	"fmt"

	"github.com/roach88/noether/physics"
	"github.com/roach88/noether/solver"
)

// CheckMonotonicity verifies that every input appears unchanged in the
// output. The engine never rewrites a known, so any drift here is a
// facade bug.
func CheckMonotonicity(inputs, values map[string]float64) []string {
	var failures []string
	for _, name := range sortedKeys(inputs) {
		got, ok := values[name]
		if !ok {
			failures = append(failures, fmt.Sprintf("monotonicity: input %s missing from output", name))
			continue
		}
		if got != inputs[name] {
			failures = append(failures, fmt.Sprintf("monotonicity: input %s changed from %g to %g", name, inputs[name], got))
		}
	}
	return failures
}

// CheckIdempotence verifies that feeding a solve's output back in
// reproduces it: a complete output is already a fixed point.
func CheckIdempotence(domain physics.Domain, values map[string]float64) []string {
	again, err := solver.Solve(domain, values)
	if err != nil {
		return []string{fmt.Sprintf("idempotence: re-solve failed: %v", err)}
	}
	var failures []string
	for _, name := range sortedKeys(values) {
		got, ok := again[name]
		if !ok {
			failures = append(failures, fmt.Sprintf("idempotence: %s missing from re-solve", name))
			continue
		}
		if !withinTolerance(got, values[name], 1e-9) {
			failures = append(failures, fmt.Sprintf("idempotence: %s drifted from %g to %g", name, values[name], got))
		}
	}
	for _, name := range sortedKeys(again) {
		if _, ok := values[name]; !ok {
			failures = append(failures, fmt.Sprintf("idempotence: re-solve invented %s", name))
		}
	}
	return failures
}
