package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSymbol_String tests canonical names for a sample of symbols.
func TestSymbol_String(t *testing.T) {
	assert.Equal(t, "u", SymU.String())
	assert.Equal(t, "a_c", SymCentripetalAccel.String())
	assert.Equal(t, "lambda", SymWavelength.String())
	assert.Equal(t, "F_per_length", SymForcePerLength.String())
	assert.Equal(t, "invalid", SymInvalid.String())
}

// TestSymbol_String_OutOfRange tests the fallback for undeclared values.
func TestSymbol_String_OutOfRange(t *testing.T) {
	assert.Equal(t, "Symbol(200)", Symbol(200).String())
}

// TestSymbol_Valid tests validity bounds.
func TestSymbol_Valid(t *testing.T) {
	assert.False(t, SymInvalid.Valid())
	assert.True(t, SymU.Valid())
	assert.True(t, SymCoilTurns.Valid())
	assert.False(t, symbolCount.Valid())
	assert.False(t, Symbol(255).Valid())
}

// TestSymbol_NamesComplete tests that every declared symbol has a name.
func TestSymbol_NamesComplete(t *testing.T) {
	for s := SymInvalid + 1; s < symbolCount; s++ {
		assert.NotEmpty(t, symbolNames[s], "symbol %d has no name", uint8(s))
	}
	assert.Equal(t, NumSymbols, int(symbolCount)-1)
}
