package harness

import (
	"fmt"
	"math"
	"sort"

	"github.com/roach88/noether/solver"
)

// DefaultTolerance bounds value comparisons when a scenario does not
// set its own.
const DefaultTolerance = 1e-6

// evaluateExpectation checks a solve outcome against the scenario's
// expectation and returns one message per mismatch.
func evaluateExpectation(s *Scenario, values map[string]float64, solveErr error) []string {
	var failures []string

	if s.Expect.Error != "" {
		if solveErr == nil {
			failures = append(failures, fmt.Sprintf("expected %s error, solve succeeded", s.Expect.Error))
		} else if kind := solver.ErrorKind(solveErr); kind != s.Expect.Error {
			failures = append(failures, fmt.Sprintf("expected %s error, got %s: %v", s.Expect.Error, kind, solveErr))
		}
		return failures
	}

	if solveErr != nil {
		return append(failures, fmt.Sprintf("solve failed: %v", solveErr))
	}

	tol := s.Expect.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}
	for _, name := range sortedKeys(s.Expect.Values) {
		want := s.Expect.Values[name]
		got, ok := values[name]
		if !ok {
			failures = append(failures, fmt.Sprintf("%s: not derived", name))
			continue
		}
		if !withinTolerance(got, want, tol) {
			failures = append(failures, fmt.Sprintf("%s: got %g, want %g (tolerance %g)", name, got, want, tol))
		}
	}
	return failures
}

// withinTolerance compares with an absolute bound for small magnitudes
// and a relative one above unity, so one tolerance works for both
// g in m/s^2 and orbital radii in metres.
func withinTolerance(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol*math.Max(1, math.Abs(want))
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
