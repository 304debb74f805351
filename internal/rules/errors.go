package rules

import (
	"fmt"

	"github.com/roach88/noether/physics"
)

// ImpossibleError reports a derivation with no real, physical result, such
// as a negative discriminant or a sine ratio above 1. The facade converts
// it into the public error taxonomy.
type ImpossibleError struct {
	Symbol   physics.Symbol
	Equation string
	Reason   string
}

// Error implements the error interface.
func (e *ImpossibleError) Error() string {
	return fmt.Sprintf("cannot derive %s via %q: %s", e.Symbol, e.Equation, e.Reason)
}

// DivisionByZeroError reports a derivation whose defining expression
// divides by a quantity that is exactly zero and for which no alternate
// route exists.
type DivisionByZeroError struct {
	Symbol   physics.Symbol
	Equation string
}

// Error implements the error interface.
func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("cannot derive %s via %q: division by zero", e.Symbol, e.Equation)
}

// impossible builds an ImpossibleError; rule closures use it for brevity.
func impossible(sym physics.Symbol, eq, reason string) error {
	return &ImpossibleError{Symbol: sym, Equation: eq, Reason: reason}
}

// divZero builds a DivisionByZeroError.
func divZero(sym physics.Symbol, eq string) error {
	return &DivisionByZeroError{Symbol: sym, Equation: eq}
}
