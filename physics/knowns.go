package physics

import "fmt"

// Knowns holds the quantities resolved so far during one solve call. It is
// a fixed-size optional-value array indexed by Symbol, created fresh at
// solve entry and discarded at exit; nothing is shared across calls.
//
// Writes are write-once: the solver may only set a currently-unset symbol,
// so the set of knowns grows monotonically during a solve. Violating that
// is a programming error in a rule table and panics, in the same way a
// duplicate mux pattern registration does.
type Knowns struct {
	vals [symbolCount]float64
	set  [symbolCount]bool
	n    int
}

// Has reports whether s has been set.
func (k *Knowns) Has(s Symbol) bool {
	return k.set[s]
}

// Get returns the value of s. It panics if s is unset; rule tables must
// list every symbol they read in the rule's needs, and the driver checks
// presence before firing, so a panic here means the table is malformed.
func (k *Knowns) Get(s Symbol) float64 {
	if !k.set[s] {
		panic(fmt.Sprintf("physics: read of unset symbol %s", s))
	}
	return k.vals[s]
}

// Lookup returns the value of s and whether it is set.
func (k *Knowns) Lookup(s Symbol) (float64, bool) {
	return k.vals[s], k.set[s]
}

// Set records a value for s. It panics if s is already set or invalid.
func (k *Knowns) Set(s Symbol, v float64) {
	if !s.Valid() {
		panic(fmt.Sprintf("physics: set of invalid symbol %d", uint8(s)))
	}
	if k.set[s] {
		panic(fmt.Sprintf("physics: double set of symbol %s", s))
	}
	k.vals[s] = v
	k.set[s] = true
	k.n++
}

// Count returns how many symbols are set.
func (k *Knowns) Count() int {
	return k.n
}

// Symbols returns the set symbols in enum order.
func (k *Knowns) Symbols() []Symbol {
	out := make([]Symbol, 0, k.n)
	for s := SymInvalid + 1; s < symbolCount; s++ {
		if k.set[s] {
			out = append(out, s)
		}
	}
	return out
}
