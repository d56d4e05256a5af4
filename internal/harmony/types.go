// Package harmony derives multi-colour palettes from a single base colour by
// rotating hue or stepping lightness on the HSL colour wheel.
package harmony

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownType is returned by ParseType for names outside the closed set.
var ErrUnknownType = errors.New("unknown harmony type")

// Type names a harmony rule.
type Type string

const (
	// Complementary pairs the base with the colour opposite it on the wheel.
	Complementary Type = "complementary"

	// Analogous takes neighbouring hues at 30° steps centred on the base.
	Analogous Type = "analogous"

	// Triadic spaces three hues 120° apart.
	Triadic Type = "triadic"

	// Monochromatic keeps hue and saturation and varies lightness.
	Monochromatic Type = "monochromatic"

	// Tetradic uses two complementary pairs 90° apart.
	Tetradic Type = "tetradic"

	// SplitComplementary flanks the complement at ±30°.
	SplitComplementary Type = "split-complementary"
)

// AllTypes returns every harmony type in display order.
func AllTypes() []Type {
	return []Type{
		Complementary,
		Analogous,
		Triadic,
		Monochromatic,
		Tetradic,
		SplitComplementary,
	}
}

// IsValid reports whether t is one of the known harmony types.
func (t Type) IsValid() bool {
	for _, valid := range AllTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// ParseType converts a name such as "split-complementary" into a Type.
// Matching ignores case and surrounding whitespace.
func ParseType(name string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(name)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q (valid types: %s)", ErrUnknownType, name, typeNames())
	}
	return t, nil
}

func typeNames() string {
	names := make([]string, 0, len(AllTypes()))
	for _, t := range AllTypes() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// String returns the type name.
func (t Type) String() string {
	return string(t)
}

// Label returns a human-readable name.
func (t Type) Label() string {
	switch t {
	case Complementary:
		return "Complementary"
	case Analogous:
		return "Analogous"
	case Triadic:
		return "Triadic"
	case Monochromatic:
		return "Monochromatic"
	case Tetradic:
		return "Tetradic"
	case SplitComplementary:
		return "Split Complementary"
	default:
		return string(t)
	}
}

// Description returns a one-line summary of the rule.
func (t Type) Description() string {
	switch t {
	case Complementary:
		return "Two opposite colors"
	case Analogous:
		return "Adjacent colors"
	case Triadic:
		return "Three evenly spaced colors"
	case Monochromatic:
		return "Shades of one color"
	case Tetradic:
		return "Four colors in pairs"
	case SplitComplementary:
		return "Base + two adjacent to complement"
	default:
		return ""
	}
}

// Tip returns a short piece of colour-theory advice for the type.
func (t Type) Tip() string {
	switch t {
	case Complementary:
		return "Complementary colors create high contrast and vibrant looks. Great for making elements stand out!"
	case Analogous:
		return "Analogous colors sit next to each other on the color wheel, creating serene and comfortable designs."
	case Triadic:
		return "Triadic colors are evenly spaced around the color wheel, offering vibrant yet balanced palettes."
	case Monochromatic:
		return "Monochromatic schemes use variations of a single color, creating a cohesive and sophisticated look."
	case Tetradic:
		return "Tetradic schemes use two complementary pairs, offering rich and varied palettes with lots of possibilities."
	case SplitComplementary:
		return "Split-complementary uses a base color and two adjacent to its complement, providing high contrast with less tension."
	default:
		return ""
	}
}
