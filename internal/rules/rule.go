package rules

import "github.com/roach88/noether/physics"

// Rule derives one output symbol from already-known symbols.
//
// Needs must list every symbol the Guard and Apply closures read; the
// driver fires a rule only when all needs are set. Guard is an extra
// applicability predicate beyond presence (non-zero divisor, sub-case
// selection); nil means always applicable. Apply returns the derived
// value, or a typed error for a genuine physical impossibility, which
// aborts the whole solve.
type Rule struct {
	Output   physics.Symbol
	Needs    []physics.Symbol
	Equation string
	Guard    func(k *physics.Knowns) bool
	Apply    func(k *physics.Knowns) (float64, error)
}

// Fireable reports whether r can fire against k: its output is unset, all
// needs are set, and the guard (if any) holds.
func (r *Rule) Fireable(k *physics.Knowns) bool {
	if k.Has(r.Output) {
		return false
	}
	for _, need := range r.Needs {
		if !k.Has(need) {
			return false
		}
	}
	if r.Guard != nil && !r.Guard(k) {
		return false
	}
	return true
}

// Table is one domain's ordered rule list. Priority is declaration order.
type Table struct {
	Domain physics.Domain
	Rules  []Rule
}

// need builds a Needs slice; it exists to keep table literals compact.
func need(syms ...physics.Symbol) []physics.Symbol { return syms }

// derive builds a rule whose computation always succeeds.
func derive(out physics.Symbol, eq string, needs []physics.Symbol, fn func(*physics.Knowns) float64) Rule {
	return Rule{
		Output:   out,
		Needs:    needs,
		Equation: eq,
		Apply: func(k *physics.Knowns) (float64, error) {
			return fn(k), nil
		},
	}
}

// deriveIf is derive with an applicability guard.
func deriveIf(out physics.Symbol, eq string, needs []physics.Symbol, guard func(*physics.Knowns) bool, fn func(*physics.Knowns) float64) Rule {
	r := derive(out, eq, needs, fn)
	r.Guard = guard
	return r
}

// deriveErr builds a rule whose computation can fail with a typed error.
func deriveErr(out physics.Symbol, eq string, needs []physics.Symbol, fn func(*physics.Knowns) (float64, error)) Rule {
	return Rule{Output: out, Needs: needs, Equation: eq, Apply: fn}
}

// deriveErrIf is deriveErr with an applicability guard.
func deriveErrIf(out physics.Symbol, eq string, needs []physics.Symbol, guard func(*physics.Knowns) bool, fn func(*physics.Knowns) (float64, error)) Rule {
	r := deriveErr(out, eq, needs, fn)
	r.Guard = guard
	return r
}
