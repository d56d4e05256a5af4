package harmony

import (
	"math"

	"github.com/jmylchreest/swatch/internal/colour"
)

const (
	// MinLightness is the floor applied to every generated colour's lightness.
	MinLightness = 32

	// MaxLightness is the lightest step of a monochromatic palette.
	MaxLightness = 90

	// DefaultCount is used for analogous and monochromatic palettes when no
	// count is given.
	DefaultCount = 5

	// AnalogousStep is the hue distance between analogous neighbours.
	AnalogousStep = 30
)

// monochromaticSteps are the lightness values of a default-sized monochromatic palette.
var monochromaticSteps = [DefaultCount]float64{32, 45, 60, 75, 90}

// normaliseLightness raises lightness to MinLightness, leaving hue and saturation alone.
func normaliseLightness(hsl colour.HSL) colour.HSL {
	hsl.L = math.Max(hsl.L, MinLightness)
	return hsl
}

// balancedHex converts hsl to hex after applying the lightness floor.
func balancedHex(hsl colour.HSL) string {
	return colour.HSLToHex(normaliseLightness(hsl))
}

// rotate returns the hue-rotated palette [base, base+offsets[0], ...].
func rotate(base colour.HSL, offsets ...float64) []string {
	colours := make([]string, 0, len(offsets)+1)
	colours = append(colours, balancedHex(base))
	for _, offset := range offsets {
		shifted := base
		shifted.H = colour.AdjustHue(base.H, offset)
		colours = append(colours, balancedHex(shifted))
	}
	return colours
}

// GenerateComplementary returns the base colour and the colour 180° opposite.
func GenerateComplementary(base string) ([]string, error) {
	hsl, err := colour.HexToHSL(base)
	if err != nil {
		return nil, err
	}
	return rotate(hsl, 180), nil
}

// GenerateAnalogous returns count hues at 30° steps centred on the base.
// A count of zero or less uses DefaultCount.
func GenerateAnalogous(base string, count int) ([]string, error) {
	hsl, err := colour.HexToHSL(base)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		count = DefaultCount
	}

	colours := make([]string, 0, count)
	for i := range count {
		offset := float64((i - count/2) * AnalogousStep)
		shifted := hsl
		shifted.H = colour.AdjustHue(hsl.H, offset)
		colours = append(colours, balancedHex(shifted))
	}
	return colours, nil
}

// GenerateTriadic returns three colours 120° apart.
func GenerateTriadic(base string) ([]string, error) {
	hsl, err := colour.HexToHSL(base)
	if err != nil {
		return nil, err
	}
	return rotate(hsl, 120, 240), nil
}

// GenerateMonochromatic returns count colours sharing the base hue and
// saturation. Five colours use the fixed steps 32, 45, 60, 75 and 90; other
// counts spread lightness evenly over [MinLightness, MaxLightness].
// A count of zero or less uses DefaultCount.
func GenerateMonochromatic(base string, count int) ([]string, error) {
	hsl, err := colour.HexToHSL(base)
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		count = DefaultCount
	}

	colours := make([]string, 0, count)
	for _, l := range monochromaticLightness(count) {
		shade := hsl
		shade.L = l
		colours = append(colours, balancedHex(shade))
	}
	return colours, nil
}

// monochromaticLightness returns the lightness values for a palette of count colours.
func monochromaticLightness(count int) []float64 {
	if count == DefaultCount {
		return monochromaticSteps[:]
	}
	if count == 1 {
		return []float64{MinLightness}
	}

	step := float64(MaxLightness-MinLightness) / float64(count-1)
	values := make([]float64, count)
	for i := range values {
		values[i] = math.Round(MinLightness + step*float64(i))
	}
	return values
}

// GenerateTetradic returns four colours 90° apart.
func GenerateTetradic(base string) ([]string, error) {
	hsl, err := colour.HexToHSL(base)
	if err != nil {
		return nil, err
	}
	return rotate(hsl, 90, 180, 270), nil
}

// GenerateSplitComplementary returns the base and the two hues 30° either side
// of its complement.
func GenerateSplitComplementary(base string) ([]string, error) {
	hsl, err := colour.HexToHSL(base)
	if err != nil {
		return nil, err
	}
	complement := colour.AdjustHue(hsl.H, 180)

	left, right := hsl, hsl
	left.H = colour.AdjustHue(complement, -30)
	right.H = colour.AdjustHue(complement, 30)

	return []string{balancedHex(hsl), balancedHex(left), balancedHex(right)}, nil
}

// Generate builds the palette for kind from base. count only affects
// analogous and monochromatic palettes; zero or less means DefaultCount.
//
// An unrecognised kind is not an error: the result is base on its own,
// exactly as given.
func Generate(base string, kind Type, count int) ([]string, error) {
	switch kind {
	case Complementary:
		return GenerateComplementary(base)
	case Analogous:
		return GenerateAnalogous(base, count)
	case Triadic:
		return GenerateTriadic(base)
	case Monochromatic:
		return GenerateMonochromatic(base, count)
	case Tetradic:
		return GenerateTetradic(base)
	case SplitComplementary:
		return GenerateSplitComplementary(base)
	default:
		return []string{base}, nil
	}
}
