package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/noether/internal/rules"
	"github.com/roach88/noether/physics"
)

// chainTable derives s from t in two hops (t -> v -> s), with the
// dependent rule declared first so the chain needs two passes.
func chainTable() *rules.Table {
	return &rules.Table{
		Domain: physics.Kinematics,
		Rules: []rules.Rule{
			{
				Output:   physics.SymS,
				Needs:    []physics.Symbol{physics.SymV},
				Equation: "s = 2*v",
				Apply: func(k *physics.Knowns) (float64, error) {
					return 2 * k.Get(physics.SymV), nil
				},
			},
			{
				Output:   physics.SymV,
				Needs:    []physics.Symbol{physics.SymT},
				Equation: "v = 3*t",
				Apply: func(k *physics.Knowns) (float64, error) {
					return 3 * k.Get(physics.SymT), nil
				},
			},
		},
	}
}

func TestDriver_RunReachesFixedPoint(t *testing.T) {
	var k physics.Knowns
	k.Set(physics.SymT, 5)

	firings, passes, err := New().Run(&k, chainTable())
	require.NoError(t, err)

	assert.Equal(t, 15.0, k.Get(physics.SymV))
	assert.Equal(t, 30.0, k.Get(physics.SymS))

	// Pass 1 fires v, pass 2 fires s, pass 3 confirms the fixed point.
	require.Len(t, firings, 2)
	assert.Equal(t, Firing{Pass: 1, Symbol: physics.SymV, Equation: "v = 3*t", Value: 15}, firings[0])
	assert.Equal(t, Firing{Pass: 2, Symbol: physics.SymS, Equation: "s = 2*v", Value: 30}, firings[1])
	assert.Equal(t, 3, passes)
}

func TestDriver_RunNothingFireable(t *testing.T) {
	var k physics.Knowns
	k.Set(physics.SymU, 1)

	firings, passes, err := New().Run(&k, chainTable())
	require.NoError(t, err)
	assert.Empty(t, firings)
	assert.Equal(t, 1, passes)
	assert.Equal(t, 1, k.Count())
}

func TestDriver_RunDeclarationOrderWins(t *testing.T) {
	// Two rules deriving the same output: the first declared fires,
	// the second is then blocked by the write-once check.
	table := &rules.Table{
		Domain: physics.Kinematics,
		Rules: []rules.Rule{
			{
				Output:   physics.SymV,
				Needs:    []physics.Symbol{physics.SymT},
				Equation: "v = t",
				Apply: func(k *physics.Knowns) (float64, error) {
					return k.Get(physics.SymT), nil
				},
			},
			{
				Output:   physics.SymV,
				Needs:    []physics.Symbol{physics.SymT},
				Equation: "v = -t",
				Apply: func(k *physics.Knowns) (float64, error) {
					return -k.Get(physics.SymT), nil
				},
			},
		},
	}

	var k physics.Knowns
	k.Set(physics.SymT, 7)

	firings, _, err := New().Run(&k, table)
	require.NoError(t, err)
	require.Len(t, firings, 1)
	assert.Equal(t, "v = t", firings[0].Equation)
	assert.Equal(t, 7.0, k.Get(physics.SymV))
}

func TestDriver_RunGuardSkipsRule(t *testing.T) {
	table := &rules.Table{
		Domain: physics.Kinematics,
		Rules: []rules.Rule{
			{
				Output:   physics.SymA,
				Needs:    []physics.Symbol{physics.SymV, physics.SymT},
				Equation: "a = v/t",
				Guard: func(k *physics.Knowns) bool {
					return k.Get(physics.SymT) != 0
				},
				Apply: func(k *physics.Knowns) (float64, error) {
					return k.Get(physics.SymV) / k.Get(physics.SymT), nil
				},
			},
		},
	}

	var k physics.Knowns
	k.Set(physics.SymV, 10)
	k.Set(physics.SymT, 0)

	firings, _, err := New().Run(&k, table)
	require.NoError(t, err)
	assert.Empty(t, firings)
	assert.False(t, k.Has(physics.SymA))
}

func TestDriver_RunApplyErrorAborts(t *testing.T) {
	boom := &rules.ImpossibleError{
		Symbol:   physics.SymV,
		Equation: "v = sqrt(-1)",
		Reason:   "negative radicand",
	}
	table := &rules.Table{
		Domain: physics.Kinematics,
		Rules: []rules.Rule{
			{
				Output:   physics.SymV,
				Needs:    []physics.Symbol{physics.SymT},
				Equation: "v = sqrt(-1)",
				Apply: func(k *physics.Knowns) (float64, error) {
					return 0, boom
				},
			},
			{
				Output:   physics.SymS,
				Needs:    []physics.Symbol{physics.SymT},
				Equation: "s = t",
				Apply: func(k *physics.Knowns) (float64, error) {
					return k.Get(physics.SymT), nil
				},
			},
		},
	}

	var k physics.Knowns
	k.Set(physics.SymT, 4)

	firings, _, err := New().Run(&k, table)
	require.ErrorIs(t, err, boom)

	// The failing rule aborts the sweep before later rules fire.
	assert.Empty(t, firings)
	assert.False(t, k.Has(physics.SymS))
}

func TestDriver_RunHitsPassCeiling(t *testing.T) {
	var k physics.Knowns
	k.Set(physics.SymT, 5)

	// Cap 1: the only allowed pass still makes progress, so the driver
	// must report non-convergence rather than return a partial result
	// silently.
	firings, passes, err := New(WithMaxPasses(1)).Run(&k, chainTable())
	require.Error(t, err)

	var ce *ConvergenceError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, physics.Kinematics, ce.Domain)
	assert.Equal(t, 1, ce.Passes)
	assert.Equal(t, 1, ce.MaxPasses)

	assert.Len(t, firings, 1)
	assert.Equal(t, 1, passes)
}

func TestDriver_OptionsIgnoreInvalidValues(t *testing.T) {
	d := New(WithMaxPasses(0), WithLogger(nil))
	assert.Equal(t, DefaultMaxPasses, d.maxPasses)
	assert.NotNil(t, d.log)
}
