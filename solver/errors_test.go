package solver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/noether/physics"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "input validation",
			err:  &InputValidationError{Symbol: "m", Value: -1, Reason: "must be > 0"},
			want: "invalid input m=-1: must be > 0",
		},
		{
			name: "input validation without symbol",
			err:  &InputValidationError{Reason: `unknown domain "invalid"`},
			want: `invalid input: unknown domain "invalid"`,
		},
		{
			name: "insufficient data",
			err:  &InsufficientDataError{Domain: physics.Kinematics, Need: 3, Got: 1},
			want: "kinematics: need at least 3 known values, got 1",
		},
		{
			name: "division by zero",
			err:  &DivisionByZeroError{Symbol: "a", Equation: "a = (v - u)/t"},
			want: `cannot derive a via "a = (v - u)/t": division by zero`,
		},
		{
			name: "physics impossible",
			err:  &PhysicsImpossibleError{Symbol: "theta2", Equation: "theta2 = asin(n1*sin(theta1)/n2)", Reason: "total internal reflection"},
			want: `no physical solution for theta2 via "theta2 = asin(n1*sin(theta1)/n2)": total internal reflection`,
		},
		{
			name: "convergence",
			err:  &ConvergenceError{Domain: physics.Wave, Passes: 20, MaxPasses: 20},
			want: "wave: no fixed point after 20 passes (cap 20)",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestPredicatesMatchWrappedErrors(t *testing.T) {
	base := &PhysicsImpossibleError{Symbol: "v", Reason: "negative radicand"}
	wrapped := fmt.Errorf("solve: %w", base)

	assert.True(t, IsPhysicsImpossible(wrapped))
	assert.False(t, IsPhysicsImpossible(errors.New("other")))
	assert.False(t, IsDivisionByZero(wrapped))
	assert.False(t, IsInputValidation(wrapped))
	assert.False(t, IsInsufficientData(wrapped))
	assert.False(t, IsConvergence(wrapped))
}

func TestErrorKind(t *testing.T) {
	assert.Equal(t, "", ErrorKind(nil))
	assert.Equal(t, "input_validation", ErrorKind(&InputValidationError{}))
	assert.Equal(t, "insufficient_data", ErrorKind(&InsufficientDataError{}))
	assert.Equal(t, "division_by_zero", ErrorKind(&DivisionByZeroError{}))
	assert.Equal(t, "physics_impossible", ErrorKind(&PhysicsImpossibleError{}))
	assert.Equal(t, "convergence", ErrorKind(&ConvergenceError{}))
	assert.Equal(t, "error", ErrorKind(errors.New("opaque")))
}
