package solver

import (
	"errors"
	"sort"

	"github.com/roach88/noether/internal/engine"
	"github.com/roach88/noether/internal/rules"
	"github.com/roach88/noether/physics"
)

// validateInputs resolves the caller's string-keyed inputs against the
// schema and checks every value before any equation runs. It returns
// the resolved raw values, still in the caller's units.
//
// Checks run in a deterministic order so the same bad input always
// yields the same error: unknown keys first (sorted), then per-symbol
// range checks in schema declaration order, then the known count.
func validateInputs(schema *physics.Schema, inputs map[string]float64) (map[physics.Symbol]float64, error) {
	var unknown []string
	raw := make(map[physics.Symbol]float64, len(inputs))
	for name, v := range inputs {
		sym, ok := schema.Resolve(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		raw[sym] = v
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &InputValidationError{
			Symbol: unknown[0],
			Value:  inputs[unknown[0]],
			Reason: "unknown symbol for domain " + schema.Domain().String(),
		}
	}

	for _, sym := range schema.Symbols() {
		v, ok := raw[sym]
		if !ok {
			continue
		}
		con, _ := schema.Constraint(sym)
		if reason := con.Violation(v); reason != "" {
			return nil, &InputValidationError{
				Symbol: schema.NameOf(sym),
				Value:  v,
				Reason: reason,
			}
		}
	}

	if len(raw) < schema.MinKnowns() {
		return nil, &InsufficientDataError{
			Domain: schema.Domain(),
			Need:   schema.MinKnowns(),
			Got:    len(raw),
		}
	}
	return raw, nil
}

// validateDerived re-checks every symbol the engine derived. Seeded
// symbols were validated on the way in; a derived value outside its
// constraint (or NaN/Inf) means the inputs described an unphysical
// system that no single equation caught.
func validateDerived(schema *physics.Schema, k *physics.Knowns, seeded map[physics.Symbol]bool, firings []engine.Firing) error {
	for _, sym := range schema.Symbols() {
		if seeded[sym] || !k.Has(sym) {
			continue
		}
		con, _ := schema.Constraint(sym)
		if reason := con.Violation(k.Get(sym)); reason != "" {
			return &PhysicsImpossibleError{
				Symbol:   schema.NameOf(sym),
				Equation: equationFor(firings, sym),
				Reason:   "derived value " + reason,
			}
		}
	}
	return nil
}

// equationFor finds the equation that derived sym, for error context.
func equationFor(firings []engine.Firing, sym physics.Symbol) string {
	for i := range firings {
		if firings[i].Symbol == sym {
			return firings[i].Equation
		}
	}
	return ""
}

// liftEngineError converts internal rule and driver errors into the
// public taxonomy, naming symbols by their domain-external names.
func liftEngineError(schema *physics.Schema, err error) error {
	var imp *rules.ImpossibleError
	if errors.As(err, &imp) {
		return &PhysicsImpossibleError{
			Symbol:   schema.NameOf(imp.Symbol),
			Equation: imp.Equation,
			Reason:   imp.Reason,
		}
	}
	var div *rules.DivisionByZeroError
	if errors.As(err, &div) {
		return &DivisionByZeroError{
			Symbol:   schema.NameOf(div.Symbol),
			Equation: div.Equation,
		}
	}
	var conv *engine.ConvergenceError
	if errors.As(err, &conv) {
		return &ConvergenceError{
			Domain:    conv.Domain,
			Passes:    conv.Passes,
			MaxPasses: conv.MaxPasses,
		}
	}
	return err
}
