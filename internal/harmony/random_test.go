package harmony

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/swatch/internal/colour"
)

func TestRandomBaseRanges(t *testing.T) {
	g := NewGenerator(rand.NewPCG(42, 1024))

	seen := map[string]bool{}
	for range 10000 {
		hsl := g.randomBase()

		assert.GreaterOrEqual(t, hsl.H, 0.0)
		assert.Less(t, hsl.H, 360.0)
		assert.GreaterOrEqual(t, hsl.S, 60.0)
		assert.Less(t, hsl.S, 90.0)
		assert.GreaterOrEqual(t, hsl.L, 42.0)
		assert.Less(t, hsl.L, 68.0)

		for _, v := range []float64{hsl.H, hsl.S, hsl.L} {
			require.Equal(t, float64(int(v)), v, "component %v is not an integer", v)
		}

		if hsl.S == 60 {
			seen["s-min"] = true
		}
		if hsl.S == 89 {
			seen["s-max"] = true
		}
		if hsl.L == 42 {
			seen["l-min"] = true
		}
		if hsl.L == 67 {
			seen["l-max"] = true
		}
	}

	// Both ends of each range are reachable.
	assert.Len(t, seen, 4)
}

func TestGeneratorIsReproducible(t *testing.T) {
	a, err := NewGenerator(rand.NewPCG(1, 2)).Palette(Triadic, 0)
	require.NoError(t, err)
	b, err := NewGenerator(rand.NewPCG(1, 2)).Palette(Triadic, 0)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 3)
}

func TestAnyBase(t *testing.T) {
	a := NewGenerator(rand.NewPCG(3, 4)).AnyBase()
	b := NewGenerator(rand.NewPCG(3, 4)).AnyBase()
	assert.Equal(t, a, b)
	assert.Regexp(t, `^#[0-9a-f]{6}$`, a)

	var g *Generator
	assert.Regexp(t, `^#[0-9a-f]{6}$`, g.AnyBase())

	// Unlike RandomBase, dark and washed out colours are reachable.
	gen := NewGenerator(rand.NewPCG(5, 6))
	var belowBounds bool
	for range 200 {
		hsl, err := colour.HexToHSL(gen.AnyBase())
		require.NoError(t, err)
		if hsl.L < randomLightMin || hsl.S < randomSatMin {
			belowBounds = true
			break
		}
	}
	assert.True(t, belowBounds)
}

func TestGenerateRandom(t *testing.T) {
	for _, kind := range AllTypes() {
		got, err := GenerateRandom(kind, 0)
		require.NoError(t, err)
		assert.NotEmpty(t, got)
	}

	got, err := GenerateRandom(Analogous, 7)
	require.NoError(t, err)
	assert.Len(t, got, 7)

	got, err = NewGenerator(nil).Palette(Monochromatic, 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
