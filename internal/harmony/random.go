package harmony

import (
	"math/rand/v2"

	"github.com/jmylchreest/swatch/internal/colour"
)

// Ranges for random base colours. Lower bounds are inclusive, upper bounds exclusive.
const (
	randomSatMin    = 60
	randomSatSpan   = 30
	randomLightMin  = 42
	randomLightSpan = 26
)

// Generator produces random palettes from its own source of randomness.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator drawing from src. A nil src uses the
// global source, which is safe for concurrent use.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		return &Generator{}
	}
	return &Generator{rng: rand.New(src)}
}

func (g *Generator) intN(n int) int {
	if g == nil || g.rng == nil {
		return rand.IntN(n)
	}
	return g.rng.IntN(n)
}

// randomBase draws H in [0,360), S in [60,90) and L in [42,68), all integers.
func (g *Generator) randomBase() colour.HSL {
	return colour.HSL{
		H: float64(g.intN(360)),
		S: float64(randomSatMin + g.intN(randomSatSpan)),
		L: float64(randomLightMin + g.intN(randomLightSpan)),
	}
}

// RandomBase returns a random base colour as hex.
func (g *Generator) RandomBase() string {
	return colour.HSLToHex(g.randomBase())
}

// AnyBase returns a base drawn uniformly from the whole RGB cube, with no
// saturation or lightness bounds.
func (g *Generator) AnyBase() string {
	if g == nil {
		return colour.RandomHex(nil)
	}
	return colour.RandomHex(g.rng)
}

// Palette generates a palette of kind around a random base colour.
func (g *Generator) Palette(kind Type, count int) ([]string, error) {
	return Generate(g.RandomBase(), kind, count)
}

// GenerateRandom generates a palette of kind around a random base colour
// using the global source.
func GenerateRandom(kind Type, count int) ([]string, error) {
	var g *Generator
	return g.Palette(kind, count)
}
