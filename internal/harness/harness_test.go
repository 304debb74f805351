package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/noether/physics"
	"github.com/roach88/noether/solver"
)

func TestRunAll_ScenarioSuitePasses(t *testing.T) {
	scenarios, err := LoadDir("testdata/scenarios")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, r := range RunAll(scenarios) {
		for _, f := range r.Failures {
			t.Errorf("%s: %s", r.Scenario.Name, f)
		}
	}
}

func TestRunWithGolden_Reports(t *testing.T) {
	for _, name := range []string{
		"kinematics-basic",
		"circuits-ohm",
		"light-total-internal-reflection",
	} {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScenario("testdata/scenarios/" + name + ".yaml")
			require.NoError(t, err)
			RunWithGolden(t, s)
		})
	}
}

func TestRun_ValueMismatchFails(t *testing.T) {
	r := Run(&Scenario{
		Name:   "wrong-expectation",
		Domain: "kinematics",
		Inputs: map[string]float64{"u": 0, "a": 5, "t": 10},
		Expect: Expectation{Values: map[string]float64{"v": 49}},
	})
	require.False(t, r.Passed())
	assert.Contains(t, r.Failures[0], "v: got 50, want 49")
}

func TestRun_MissingSymbolFails(t *testing.T) {
	// From V and R alone the energy is underdetermined.
	r := Run(&Scenario{
		Name:   "underdetermined",
		Domain: "circuits",
		Inputs: map[string]float64{"V": 12, "R": 4},
		Expect: Expectation{Values: map[string]float64{"E_energy": 1}},
	})
	require.False(t, r.Passed())
	assert.Contains(t, r.Failures[0], "E_energy: not derived")
}

func TestRun_UnexpectedSuccessFails(t *testing.T) {
	r := Run(&Scenario{
		Name:   "should-have-failed",
		Domain: "kinematics",
		Inputs: map[string]float64{"u": 0, "a": 5, "t": 10},
		Expect: Expectation{Error: "physics_impossible"},
	})
	require.False(t, r.Passed())
	assert.Contains(t, r.Failures[0], "solve succeeded")
}

func TestRun_WrongErrorKindFails(t *testing.T) {
	r := Run(&Scenario{
		Name:   "wrong-kind",
		Domain: "kinematics",
		Inputs: map[string]float64{"u": 1, "a": -5, "s": 100},
		Expect: Expectation{Error: "division_by_zero"},
	})
	require.False(t, r.Passed())
	assert.Contains(t, r.Failures[0], "got physics_impossible")
}

func TestCheckMonotonicity(t *testing.T) {
	inputs := map[string]float64{"u": 1, "t": 2}

	assert.Empty(t, CheckMonotonicity(inputs, map[string]float64{"u": 1, "t": 2, "v": 3}))

	failures := CheckMonotonicity(inputs, map[string]float64{"u": 1.5, "t": 2})
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "input u changed")

	failures = CheckMonotonicity(inputs, map[string]float64{"u": 1})
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "input t missing")
}

func TestCheckIdempotence(t *testing.T) {
	out, err := solver.Solve(physics.Circular, map[string]float64{"m": 3, "v": 4, "r": 2})
	require.NoError(t, err)
	assert.Empty(t, CheckIdempotence(physics.Circular, out))
}
