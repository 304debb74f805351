package solver

import (
	"context"

	"github.com/roach88/noether/physics"
)

// Problem is the hand-off type between a natural-language front end and
// the engine: a recognized domain plus extracted known quantities.
// Target names the symbol the question asked for; it is advisory only,
// the engine always derives everything derivable.
type Problem struct {
	Domain physics.Domain
	Inputs map[string]float64
	Target string
}

// Solve runs the problem through the engine.
func (p Problem) Solve() (map[string]float64, error) {
	return Solve(p.Domain, p.Inputs)
}

// ProblemParser extracts a Problem from free-form text. Implementations
// live outside this module; the interface fixes the integration
// boundary.
type ProblemParser interface {
	Parse(ctx context.Context, text string) (Problem, error)
}
