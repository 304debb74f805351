package solver

import (
	"errors"
	"fmt"

	"github.com/roach88/noether/physics"
)

// InputValidationError reports an input the schema rejects before any
// equation runs: an unknown symbol name, a NaN or infinite value, or a
// value outside the symbol's legal range.
type InputValidationError struct {
	Symbol string
	Value  float64
	Reason string
}

// Error implements the error interface.
func (e *InputValidationError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input %s=%g: %s", e.Symbol, e.Value, e.Reason)
}

// InsufficientDataError reports a solve attempted with fewer knowns
// than the domain's minimum.
type InsufficientDataError struct {
	Domain physics.Domain
	Need   int
	Got    int
}

// Error implements the error interface.
func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s: need at least %d known values, got %d", e.Domain, e.Need, e.Got)
}

// DivisionByZeroError reports a derivation whose defining expression
// divides by a quantity that is exactly zero, with no alternate route
// to the same symbol.
type DivisionByZeroError struct {
	Symbol   string
	Equation string
}

// Error implements the error interface.
func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("cannot derive %s via %q: division by zero", e.Symbol, e.Equation)
}

// PhysicsImpossibleError reports inputs that admit no real, physical
// solution, such as a negative discriminant, total internal
// reflection, or a derived speed at or beyond c.
type PhysicsImpossibleError struct {
	Symbol   string
	Equation string
	Reason   string
}

// Error implements the error interface.
func (e *PhysicsImpossibleError) Error() string {
	if e.Equation == "" {
		return fmt.Sprintf("no physical solution for %s: %s", e.Symbol, e.Reason)
	}
	return fmt.Sprintf("no physical solution for %s via %q: %s", e.Symbol, e.Equation, e.Reason)
}

// ConvergenceError reports a rule table still deriving new values at
// the pass ceiling. It indicates a malformed table, never hard
// physics; results are not silently truncated.
type ConvergenceError struct {
	Domain    physics.Domain
	Passes    int
	MaxPasses int
}

// Error implements the error interface.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s: no fixed point after %d passes (cap %d)", e.Domain, e.Passes, e.MaxPasses)
}

// IsInputValidation reports whether err is an InputValidationError.
// Uses errors.As to handle wrapped errors.
func IsInputValidation(err error) bool {
	var e *InputValidationError
	return errors.As(err, &e)
}

// IsInsufficientData reports whether err is an InsufficientDataError.
func IsInsufficientData(err error) bool {
	var e *InsufficientDataError
	return errors.As(err, &e)
}

// IsDivisionByZero reports whether err is a DivisionByZeroError.
func IsDivisionByZero(err error) bool {
	var e *DivisionByZeroError
	return errors.As(err, &e)
}

// IsPhysicsImpossible reports whether err is a PhysicsImpossibleError.
func IsPhysicsImpossible(err error) bool {
	var e *PhysicsImpossibleError
	return errors.As(err, &e)
}

// IsConvergence reports whether err is a ConvergenceError.
func IsConvergence(err error) bool {
	var e *ConvergenceError
	return errors.As(err, &e)
}

// ErrorKind classifies err into a stable machine-readable label for
// history records and CLI output. Unrecognized errors map to "error";
// nil maps to "".
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsInputValidation(err):
		return "input_validation"
	case IsInsufficientData(err):
		return "insufficient_data"
	case IsDivisionByZero(err):
		return "division_by_zero"
	case IsPhysicsImpossible(err):
		return "physics_impossible"
	case IsConvergence(err):
		return "convergence"
	default:
		return "error"
	}
}
