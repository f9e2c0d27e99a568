package field_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/geomopt/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVars_DeclareIsIdempotent verifies that re-declaring a name returns the
// same slot and keeps the first sampled value.
func TestVars_DeclareIsIdempotent(t *testing.T) {
	v := field.NewVars(field.WithSeed(42))

	i := v.Declare("x", -1, 1)
	x0 := v.At(i)
	j := v.Declare("x", 100, 200)

	assert.Equal(t, i, j, "same name must map to the same slot")
	assert.Equal(t, x0, v.At(j), "re-declaration must not resample")
	assert.Equal(t, 1, v.Len())
	assert.GreaterOrEqual(t, x0, -1.0)
	assert.LessOrEqual(t, x0, 1.0)
}

// TestVars_SeedDeterminism checks that equal seeds give equal initial samples.
func TestVars_SeedDeterminism(t *testing.T) {
	a := field.NewVars(field.WithSeed(7))
	b := field.NewVars(field.WithSeed(7))
	for _, name := range []string{"p", "q", "r"} {
		a.Declare(name, 0, 10)
		b.Declare(name, 0, 10)
	}
	assert.Equal(t, a.Values(), b.Values())
	assert.Equal(t, []string{"p", "q", "r"}, a.Names())
}

// TestVars_ZeroSeedIsDefault verifies the seed==0 ⇒ default seed policy.
func TestVars_ZeroSeedIsDefault(t *testing.T) {
	a := field.NewVars(field.WithSeed(0))
	b := field.NewVars()
	a.Declare("x", -1, 1)
	b.Declare("x", -1, 1)
	assert.Equal(t, a.Values(), b.Values())
}

// TestVars_SwappedBounds ensures lo > hi is tolerated.
func TestVars_SwappedBounds(t *testing.T) {
	v := field.NewVars(field.WithRand(rand.New(rand.NewSource(3))))
	x := v.At(v.Declare("x", 5, 4))
	assert.GreaterOrEqual(t, x, 4.0)
	assert.LessOrEqual(t, x, 5.0)
}

// TestVars_SetValues covers length validation and round trip.
func TestVars_SetValues(t *testing.T) {
	v := field.NewVars()
	v.Declare("a", 0, 1)
	v.Declare("b", 0, 1)

	err := v.SetValues([]float64{1})
	assert.ErrorIs(t, err, field.ErrLengthMismatch)

	require.NoError(t, v.SetValues([]float64{3, 4}))
	got, ok := v.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, 4.0, got)

	assert.ErrorIs(t, v.Set("zzz", 1), field.ErrUnknownVar)
	require.NoError(t, v.Set("a", -2))
	assert.Equal(t, []float64{-2, 4}, v.Values())
}

// TestWithRand_NilPanics checks that option constructors reject nil.
func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { field.WithRand(nil) })
}

// TestDeriveRand_Independent checks derived streams differ and are reproducible.
func TestDeriveRand_Independent(t *testing.T) {
	a := field.DeriveRand(rand.New(rand.NewSource(1)), 0).Int63()
	b := field.DeriveRand(rand.New(rand.NewSource(1)), 1).Int63()
	c := field.DeriveRand(rand.New(rand.NewSource(1)), 0).Int63()
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, c)
}
