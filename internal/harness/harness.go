package harness

import (
	"fmt"

	"github.com/roach88/noether/physics"
	"github.com/roach88/noether/solver"
)

// Result is one scenario's outcome. Failures holds one message per
// broken expectation or property; empty means the scenario passed.
type Result struct {
	Scenario *Scenario
	Values   map[string]float64
	Trace    []solver.Firing
	Passes   int
	Err      error
	Failures []string
}

// Passed reports whether every expectation and property held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Run executes one scenario and evaluates its expectation plus the
// cross-cutting properties.
func Run(s *Scenario) *Result {
	r := &Result{Scenario: s}

	domain, ok := physics.ParseDomain(s.Domain)
	if !ok {
		r.Failures = append(r.Failures, fmt.Sprintf("unknown domain %q", s.Domain))
		return r
	}

	res, err := solver.SolveWithTrace(domain, s.Inputs)
	r.Err = err
	if err == nil {
		r.Values = res.Values
		r.Trace = res.Trace
		r.Passes = res.Passes
	}

	r.Failures = append(r.Failures, evaluateExpectation(s, r.Values, err)...)
	if err == nil {
		r.Failures = append(r.Failures, CheckMonotonicity(s.Inputs, r.Values)...)
		r.Failures = append(r.Failures, CheckIdempotence(domain, r.Values)...)
	}
	return r
}

// RunAll executes scenarios in order and returns one result each.
func RunAll(scenarios []*Scenario) []*Result {
	results := make([]*Result, len(scenarios))
	for i, s := range scenarios {
		results[i] = Run(s)
	}
	return results
}
