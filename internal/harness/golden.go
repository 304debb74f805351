package harness

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/noether/physics"
	"github.com/roach88/noether/solver"
)

// RenderReport renders one result as a deterministic text report:
// inputs and values in schema declaration order, the trace in firing
// order, floats in shortest round-trip form.
func RenderReport(r *Result) []byte {
	domain, _ := physics.ParseDomain(r.Scenario.Domain)

	var b bytes.Buffer
	fmt.Fprintf(&b, "scenario: %s\n", r.Scenario.Name)
	fmt.Fprintf(&b, "domain: %s\n", r.Scenario.Domain)
	b.WriteString("inputs:\n")
	for _, name := range orderedNames(domain, r.Scenario.Inputs) {
		fmt.Fprintf(&b, "  %s = %s\n", name, formatValue(r.Scenario.Inputs[name]))
	}

	if r.Err != nil {
		fmt.Fprintf(&b, "result: error (%s): %s\n", solver.ErrorKind(r.Err), r.Err.Error())
		return b.Bytes()
	}

	fmt.Fprintf(&b, "result: ok (%d passes)\n", r.Passes)
	b.WriteString("trace:\n")
	for _, f := range r.Trace {
		fmt.Fprintf(&b, "  pass %d: %s => %s = %s\n", f.Pass, f.Equation, f.Symbol, formatValue(f.Value))
	}
	b.WriteString("values:\n")
	for _, name := range orderedNames(domain, r.Values) {
		fmt.Fprintf(&b, "  %s = %s\n", name, formatValue(r.Values[name]))
	}
	return b.Bytes()
}

// RunWithGolden executes a scenario, fails the test on any expectation
// failure, and compares the rendered report against
// testdata/golden/{name}.golden. Regenerate with go test -update.
func RunWithGolden(t *testing.T, s *Scenario) {
	t.Helper()

	r := Run(s)
	for _, f := range r.Failures {
		t.Errorf("%s: %s", s.Name, f)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, RenderReport(r))
}

// orderedNames returns m's keys in schema declaration order; keys
// outside the schema (none in practice) sort last alphabetically.
func orderedNames(domain physics.Domain, m map[string]float64) []string {
	out := make([]string, 0, len(m))
	seen := make(map[string]bool, len(m))
	if schema, ok := physics.SchemaFor(domain); ok {
		for _, sym := range schema.Symbols() {
			name := schema.NameOf(sym)
			if _, present := m[name]; present {
				out = append(out, name)
				seen[name] = true
			}
		}
	}
	var rest []string
	for name := range m {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
