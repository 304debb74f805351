package solver

import (
	"fmt"

	"github.com/roach88/noether/internal/engine"
	"github.com/roach88/noether/internal/rules"
	"github.com/roach88/noether/physics"
)

// Firing is one equation application within a solve, in firing order.
// Symbol carries the domain-external name; angle values are the raw
// radians the engine computed with.
type Firing struct {
	Pass     int     `json:"pass"`
	Symbol   string  `json:"symbol"`
	Equation string  `json:"equation"`
	Value    float64 `json:"value"`
}

// Result is a solve outcome with provenance.
type Result struct {
	Domain physics.Domain
	Values map[string]float64
	Trace  []Firing
	Passes int
}

// Solve derives every quantity the domain's equations can reach from
// inputs. Keys are the domain's external symbol names; values are SI.
// Input entries appear unchanged in the output map. On error the
// returned map is nil.
func Solve(domain physics.Domain, inputs map[string]float64) (map[string]float64, error) {
	res, err := SolveWithTrace(domain, inputs)
	if err != nil {
		return nil, err
	}
	return res.Values, nil
}

// SolveWithTrace is Solve plus the firing trace and pass count.
func SolveWithTrace(domain physics.Domain, inputs map[string]float64) (*Result, error) {
	schema, ok := physics.SchemaFor(domain)
	if !ok {
		return nil, &InputValidationError{Reason: fmt.Sprintf("unknown domain %q", domain.String())}
	}
	table, ok := rules.TableFor(domain)
	if !ok {
		return nil, fmt.Errorf("solver: no rule table for domain %s", domain)
	}

	raw, err := validateInputs(schema, inputs)
	if err != nil {
		return nil, err
	}

	// Seed in schema order so the write sequence is deterministic.
	// Angles solve in radians; defaults fill only unsupplied symbols
	// and do not count toward the minimum-knowns check above.
	var k physics.Knowns
	seeded := make(map[physics.Symbol]bool, len(raw))
	for _, sym := range schema.Symbols() {
		if v, ok := raw[sym]; ok {
			if schema.IsAngle(sym) {
				v = normalizeAngle(v)
			}
			k.Set(sym, v)
			seeded[sym] = true
		}
	}
	for _, sym := range schema.Symbols() {
		if k.Has(sym) {
			continue
		}
		if def, ok := schema.Default(sym); ok {
			k.Set(sym, def)
			seeded[sym] = true
		}
	}

	firings, passes, err := engine.New().Run(&k, table)
	if err != nil {
		return nil, liftEngineError(schema, err)
	}
	if err := validateDerived(schema, &k, seeded, firings); err != nil {
		return nil, err
	}

	// Inputs echo verbatim, including angle inputs in whatever unit
	// they arrived in; derived angles report in degrees.
	values := make(map[string]float64, k.Count())
	for _, sym := range schema.Symbols() {
		if !k.Has(sym) {
			continue
		}
		name := schema.NameOf(sym)
		switch {
		case seeded[sym]:
			if v, ok := raw[sym]; ok {
				values[name] = v
			} else {
				values[name] = k.Get(sym)
			}
		case schema.IsAngle(sym):
			values[name] = radiansToDegrees(k.Get(sym))
		default:
			values[name] = k.Get(sym)
		}
	}

	trace := make([]Firing, len(firings))
	for i, f := range firings {
		trace[i] = Firing{
			Pass:     f.Pass,
			Symbol:   schema.NameOf(f.Symbol),
			Equation: f.Equation,
			Value:    f.Value,
		}
	}
	return &Result{Domain: domain, Values: values, Trace: trace, Passes: passes}, nil
}
