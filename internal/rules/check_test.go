package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/noether/physics"
)

func TestCheckAll_RegisteredTablesAreClean(t *testing.T) {
	errs := CheckAll()
	for _, e := range errs {
		t.Errorf("table defect: %s", e.Error())
	}
}

func TestCheckAll_CoversEveryDomain(t *testing.T) {
	for _, d := range physics.Domains() {
		_, ok := TableFor(d)
		assert.True(t, ok, "domain %s has no rule table", d)
	}
}

func TestCheck_FlagsDefects(t *testing.T) {
	noop := func(k *physics.Knowns) (float64, error) { return 0, nil }

	tests := []struct {
		name  string
		table *Table
		want  string
	}{
		{
			name:  "empty table",
			table: &Table{Domain: physics.Kinematics},
			want:  "table declares no rules",
		},
		{
			name: "empty equation",
			table: &Table{Domain: physics.Kinematics, Rules: []Rule{
				{Output: physics.SymV, Needs: need(physics.SymT), Apply: noop},
			}},
			want: "rule 0 has an empty equation",
		},
		{
			name: "duplicate equation",
			table: &Table{Domain: physics.Kinematics, Rules: []Rule{
				{Output: physics.SymV, Needs: need(physics.SymT), Equation: "v = t", Apply: noop},
				{Output: physics.SymS, Needs: need(physics.SymT), Equation: "v = t", Apply: noop},
			}},
			want: "duplicate equation",
		},
		{
			name: "missing apply",
			table: &Table{Domain: physics.Kinematics, Rules: []Rule{
				{Output: physics.SymV, Needs: need(physics.SymT), Equation: "v = t"},
			}},
			want: "rule has no apply function",
		},
		{
			name: "output outside schema",
			table: &Table{Domain: physics.Kinematics, Rules: []Rule{
				{Output: physics.SymCharge, Needs: need(physics.SymT), Equation: "q = t", Apply: noop},
			}},
			want: "output q is not in the schema",
		},
		{
			name: "need outside schema",
			table: &Table{Domain: physics.Kinematics, Rules: []Rule{
				{Output: physics.SymV, Needs: need(physics.SymCharge), Equation: "v = q", Apply: noop},
			}},
			want: "need q is not in the schema",
		},
		{
			name: "rule needs its own output",
			table: &Table{Domain: physics.Kinematics, Rules: []Rule{
				{Output: physics.SymV, Needs: need(physics.SymV), Equation: "v = v", Apply: noop},
			}},
			want: "rule needs its own output",
		},
		{
			name: "no needs",
			table: &Table{Domain: physics.Kinematics, Rules: []Rule{
				{Output: physics.SymV, Equation: "v = 1", Apply: noop},
			}},
			want: "rule declares no needs",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := Check(tc.table)
			require.NotEmpty(t, errs)

			found := false
			for _, e := range errs {
				if e.Message == tc.want {
					found = true
				}
			}
			assert.True(t, found, "expected defect %q, got %v", tc.want, errs)
		})
	}
}

func TestCheck_UnknownDomain(t *testing.T) {
	errs := Check(&Table{Domain: physics.DomainInvalid})
	require.Len(t, errs, 1)
	assert.Equal(t, "domain has no schema", errs[0].Message)
}
