package rules

import (
	"fmt"

	"github.com/roach88/noether/physics"
)

// CheckError is one defect found in a rule table declaration.
type CheckError struct {
	Domain   physics.Domain
	Equation string
	Message  string
}

// Error implements the error interface.
func (e CheckError) Error() string {
	if e.Equation != "" {
		return fmt.Sprintf("%s: %q: %s", e.Domain, e.Equation, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Domain, e.Message)
}

// Check validates one table against its domain schema.
// Returns all defects found (does not fail-fast).
func Check(t *Table) []CheckError {
	schema, ok := physics.SchemaFor(t.Domain)
	if !ok {
		return []CheckError{{Domain: t.Domain, Message: "domain has no schema"}}
	}

	var errs []CheckError
	if len(t.Rules) == 0 {
		errs = append(errs, CheckError{Domain: t.Domain, Message: "table declares no rules"})
	}

	seen := make(map[string]bool, len(t.Rules))
	for i := range t.Rules {
		r := &t.Rules[i]

		if r.Equation == "" {
			errs = append(errs, CheckError{
				Domain:  t.Domain,
				Message: fmt.Sprintf("rule %d has an empty equation", i),
			})
		} else if seen[r.Equation] {
			errs = append(errs, CheckError{
				Domain:   t.Domain,
				Equation: r.Equation,
				Message:  "duplicate equation",
			})
		}
		seen[r.Equation] = true

		if r.Apply == nil {
			errs = append(errs, CheckError{
				Domain:   t.Domain,
				Equation: r.Equation,
				Message:  "rule has no apply function",
			})
		}
		if !schema.Has(r.Output) {
			errs = append(errs, CheckError{
				Domain:   t.Domain,
				Equation: r.Equation,
				Message:  fmt.Sprintf("output %s is not in the schema", r.Output),
			})
		}
		if len(r.Needs) == 0 {
			errs = append(errs, CheckError{
				Domain:   t.Domain,
				Equation: r.Equation,
				Message:  "rule declares no needs",
			})
		}

		dup := make(map[physics.Symbol]bool, len(r.Needs))
		for _, n := range r.Needs {
			if !schema.Has(n) {
				errs = append(errs, CheckError{
					Domain:   t.Domain,
					Equation: r.Equation,
					Message:  fmt.Sprintf("need %s is not in the schema", n),
				})
			}
			if n == r.Output {
				errs = append(errs, CheckError{
					Domain:   t.Domain,
					Equation: r.Equation,
					Message:  "rule needs its own output",
				})
			}
			if dup[n] {
				errs = append(errs, CheckError{
					Domain:   t.Domain,
					Equation: r.Equation,
					Message:  fmt.Sprintf("duplicate need %s", n),
				})
			}
			dup[n] = true
		}
	}
	return errs
}

// CheckAll validates every registered table and flags domains without one.
func CheckAll() []CheckError {
	var errs []CheckError
	for _, d := range physics.Domains() {
		t, ok := TableFor(d)
		if !ok {
			errs = append(errs, CheckError{Domain: d, Message: "no rule table registered"})
			continue
		}
		if t.Domain != d {
			errs = append(errs, CheckError{
				Domain:  d,
				Message: fmt.Sprintf("table registered under %s declares domain %s", d, t.Domain),
			})
		}
		errs = append(errs, Check(t)...)
	}
	return errs
}
