package engine

import (
	"log/slog"

	"github.com/roach88/noether/internal/rules"
	"github.com/roach88/noether/physics"
)

// DefaultMaxPasses bounds the number of sweeps over a rule table.
// A well-formed table converges in at most |schema| passes, so reaching
// this ceiling indicates a malformed table, not hard physics.
const DefaultMaxPasses = 20

// Firing records one rule application, in solve order.
type Firing struct {
	Pass     int
	Symbol   physics.Symbol
	Equation string
	Value    float64
}

// Driver runs rule tables to fixed point.
//
// A Driver holds only configuration; all per-solve state lives in the
// Knowns value the caller passes to Run, so one Driver is safe for
// concurrent use and for reuse across solves.
type Driver struct {
	maxPasses int
	log       *slog.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithMaxPasses overrides the pass ceiling. Values below 1 are ignored.
func WithMaxPasses(n int) Option {
	return func(d *Driver) {
		if n >= 1 {
			d.maxPasses = n
		}
	}
}

// WithLogger routes the per-firing debug log. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) {
		if l != nil {
			d.log = l
		}
	}
}

// New creates a Driver with the default pass ceiling.
func New(opts ...Option) *Driver {
	d := &Driver{
		maxPasses: DefaultMaxPasses,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run sweeps t's rules over k until a sweep fires nothing, and returns
// the firings in order plus the number of passes executed.
//
// Rules are evaluated in declaration order within each pass, and every
// symbol is written at most once, so the result is a pure function of
// the seeded knowns for a fixed table.
//
// An error from a rule's Apply aborts the run immediately; it marks a
// genuine physical impossibility, not a skippable rule. If the final
// allowed pass still made progress, Run returns a ConvergenceError.
func (d *Driver) Run(k *physics.Knowns, t *rules.Table) ([]Firing, int, error) {
	var firings []Firing

	for pass := 1; pass <= d.maxPasses; pass++ {
		changed := false
		for i := range t.Rules {
			r := &t.Rules[i]
			if !r.Fireable(k) {
				continue
			}
			val, err := r.Apply(k)
			if err != nil {
				return firings, pass, err
			}
			k.Set(r.Output, val)
			firings = append(firings, Firing{
				Pass:     pass,
				Symbol:   r.Output,
				Equation: r.Equation,
				Value:    val,
			})
			d.log.Debug("rule fired",
				"domain", t.Domain,
				"pass", pass,
				"symbol", r.Output,
				"equation", r.Equation,
				"value", val,
			)
			changed = true
		}
		if !changed {
			return firings, pass, nil
		}
	}

	return firings, d.maxPasses, &ConvergenceError{
		Domain:    t.Domain,
		Passes:    d.maxPasses,
		MaxPasses: d.maxPasses,
	}
}
