package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/noether/physics"
)

func TestConvergenceError_Error(t *testing.T) {
	err := &ConvergenceError{Domain: physics.Circuits, Passes: 20, MaxPasses: 20}
	assert.Equal(t, "circuits: no fixed point after 20 passes (cap 20)", err.Error())
}

func TestIsConvergenceError(t *testing.T) {
	ce := &ConvergenceError{Domain: physics.Wave, Passes: 20, MaxPasses: 20}

	assert.True(t, IsConvergenceError(ce))
	assert.True(t, IsConvergenceError(fmt.Errorf("solve: %w", ce)))
	assert.False(t, IsConvergenceError(errors.New("unrelated")))
	assert.False(t, IsConvergenceError(nil))
}
