package testutil

import "fmt"

// FixedIDGenerator hands out a predetermined ID sequence. It panics
// when the sequence runs out; a test that consumes more IDs than it
// declared is a test bug.
type FixedIDGenerator struct {
	ids  []string
	next int
}

// NewFixedIDGenerator builds a generator over the given sequence.
func NewFixedIDGenerator(ids ...string) *FixedIDGenerator {
	return &FixedIDGenerator{ids: ids}
}

// NewID implements store.IDGenerator.
func (g *FixedIDGenerator) NewID() (string, error) {
	if g.next >= len(g.ids) {
		panic(fmt.Sprintf("testutil: fixed ID generator exhausted after %d IDs", len(g.ids)))
	}
	id := g.ids[g.next]
	g.next++
	return id, nil
}
