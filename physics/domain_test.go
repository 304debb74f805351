package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseDomain_RoundTrip tests name parsing for every declared domain.
func TestParseDomain_RoundTrip(t *testing.T) {
	for _, d := range Domains() {
		parsed, ok := ParseDomain(d.String())
		require.True(t, ok, "ParseDomain(%q)", d.String())
		assert.Equal(t, d, parsed)
	}

	_, ok := ParseDomain("optics")
	assert.False(t, ok)
	_, ok = ParseDomain("")
	assert.False(t, ok)
	_, ok = ParseDomain("invalid")
	assert.False(t, ok, "the sentinel name must not parse")
}

// TestDomains_Count tests the closed domain set size.
func TestDomains_Count(t *testing.T) {
	assert.Len(t, Domains(), 18)
}

// TestSchemaFor_EveryDomain tests that each domain carries a complete
// schema: names resolve back to their symbols and every symbol has a
// constraint.
func TestSchemaFor_EveryDomain(t *testing.T) {
	for _, d := range Domains() {
		t.Run(d.String(), func(t *testing.T) {
			s, ok := SchemaFor(d)
			require.True(t, ok)
			require.NotNil(t, s)
			assert.Equal(t, d, s.Domain())
			assert.GreaterOrEqual(t, s.MinKnowns(), 1)
			require.NotEmpty(t, s.Symbols())

			for _, sym := range s.Symbols() {
				name := s.NameOf(sym)
				require.NotEmpty(t, name)

				resolved, ok := s.Resolve(name)
				require.True(t, ok, "%s: name %q does not resolve", d, name)
				assert.Equal(t, sym, resolved)

				_, ok = s.Constraint(sym)
				assert.True(t, ok, "%s: symbol %s has no constraint", d, sym)
				assert.True(t, s.Has(sym))
			}
		})
	}
}

// TestSchemaFor_InvalidDomain tests the lookup failure path.
func TestSchemaFor_InvalidDomain(t *testing.T) {
	_, ok := SchemaFor(DomainInvalid)
	assert.False(t, ok)
	_, ok = SchemaFor(domainCount)
	assert.False(t, ok)
}

// TestSchema_DomainSpecificNames tests that the same symbol can carry
// different external names in different domains.
func TestSchema_DomainSpecificNames(t *testing.T) {
	mag, _ := SchemaFor(Magnetism)
	cir, _ := SchemaFor(Circular)

	// SymRadius is "r_wire" for a straight wire but plain "r" on a circle.
	assert.Equal(t, "r_wire", mag.NameOf(SymRadius))
	assert.Equal(t, "r", cir.NameOf(SymRadius))

	sym, ok := mag.Resolve("I_wire")
	require.True(t, ok)
	assert.Equal(t, SymCurrent, sym)
}

// TestSchema_Angles tests angle classification per domain.
func TestSchema_Angles(t *testing.T) {
	proj, _ := SchemaFor(Projectile)
	assert.True(t, proj.IsAngle(SymTheta))
	assert.False(t, proj.IsAngle(SymU))

	light, _ := SchemaFor(Light)
	assert.True(t, light.IsAngle(SymTheta1))
	assert.True(t, light.IsAngle(SymTheta2))
	assert.False(t, light.IsAngle(SymN1))

	kin, _ := SchemaFor(Kinematics)
	for _, sym := range kin.Symbols() {
		assert.False(t, kin.IsAngle(sym))
	}
}

// TestSchema_Defaults tests declared seed fallbacks.
func TestSchema_Defaults(t *testing.T) {
	sound, _ := SchemaFor(Sound)
	v, ok := sound.Default(SymVMedium)
	require.True(t, ok)
	assert.Equal(t, SpeedOfSound, v)

	// Dynamics assumes flat ground unless an incline angle is given.
	dyn, _ := SchemaFor(Dynamics)
	v, ok = dyn.Default(SymTheta)
	require.True(t, ok)
	assert.Zero(t, v)

	kin, _ := SchemaFor(Kinematics)
	_, ok = kin.Default(SymT)
	assert.False(t, ok)
}

// TestSchema_MinKnowns tests the per-domain minimums: three knowns for the
// SUVAT set, one for the single-chain wave and circular domains, two
// elsewhere.
func TestSchema_MinKnowns(t *testing.T) {
	expect := map[Domain]int{
		Kinematics: 3,
		Wave:       1,
		Circular:   1,
	}
	for _, d := range Domains() {
		s, _ := SchemaFor(d)
		want, ok := expect[d]
		if !ok {
			want = 2
		}
		assert.Equal(t, want, s.MinKnowns(), "domain %s", d)
	}
}

// TestSchema_NameOf_OutsideSchema tests the canonical-name fallback.
func TestSchema_NameOf_OutsideSchema(t *testing.T) {
	kin, _ := SchemaFor(Kinematics)
	assert.Equal(t, "torque", kin.NameOf(SymTorque))
}
