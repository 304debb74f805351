package engine

import (
	"errors"
	"fmt"

	"github.com/roach88/noether/physics"
)

// ConvergenceError reports a rule table that was still deriving new
// values when the pass ceiling was reached. Monotonic writes bound a
// well-formed table by the schema size, so this flags a malformed
// table; results are never silently truncated.
type ConvergenceError struct {
	Domain    physics.Domain
	Passes    int
	MaxPasses int
}

// Error implements the error interface.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: no fixed point after %d passes (cap %d)",
		e.Domain, e.Passes, e.MaxPasses)
}

// IsConvergenceError reports whether err is a ConvergenceError.
// Uses errors.As to handle wrapped errors.
func IsConvergenceError(err error) bool {
	var ce *ConvergenceError
	return errors.As(err, &ce)
}
