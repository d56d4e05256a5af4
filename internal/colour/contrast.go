package colour

import (
	"math"
)

// Level is a WCAG conformance level for text contrast.
type Level string

const (
	// LevelAA requires a contrast ratio of at least 4.5:1.
	LevelAA Level = "AA"
	// LevelAAA requires a contrast ratio of at least 7:1.
	LevelAAA Level = "AAA"
)

// Pure white and black, the two candidates for overlay text.
const (
	White = "#ffffff"
	Black = "#000000"
)

// Threshold returns the minimum contrast ratio for the level.
// Any level other than AAA is treated as AA.
func (l Level) Threshold() float64 {
	if l == LevelAAA {
		return 7.0
	}
	return 4.5
}

// RelativeLuminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(rgb RGB) float64 {
	r := gammaExpand(float64(rgb.R) / 255.0)
	g := gammaExpand(float64(rgb.G) / 255.0)
	b := gammaExpand(float64(rgb.B) / 255.0)

	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaExpand linearises an sRGB component.
func gammaExpand(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatioRGB calculates the WCAG contrast ratio between two colours.
// Returns a value between 1 and 21.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatioRGB(c1, c2 RGB) float64 {
	l1 := RelativeLuminance(c1)
	l2 := RelativeLuminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastRatio parses two hex colours and returns their contrast ratio.
func ContrastRatio(hex1, hex2 string) (float64, error) {
	c1, err := ParseHex(hex1)
	if err != nil {
		return 0, err
	}
	c2, err := ParseHex(hex2)
	if err != nil {
		return 0, err
	}
	return ContrastRatioRGB(c1, c2), nil
}

// HasGoodContrast reports whether text on bg meets the given WCAG level.
// An empty level means AA.
func HasGoodContrast(text, bg string, level Level) (bool, error) {
	ratio, err := ContrastRatio(text, bg)
	if err != nil {
		return false, err
	}
	return ratio >= level.Threshold(), nil
}

// BestTextColor returns White or Black, whichever reads better on bg.
// White is chosen only when its contrast is strictly greater; ties go to Black.
func BestTextColor(bg string) (string, error) {
	rgb, err := ParseHex(bg)
	if err != nil {
		return "", err
	}
	return BestTextColorRGB(rgb), nil
}

// BestTextColorRGB is BestTextColor for an already parsed colour.
func BestTextColorRGB(bg RGB) string {
	white := ContrastRatioRGB(RGB{R: 255, G: 255, B: 255}, bg)
	black := ContrastRatioRGB(RGB{}, bg)
	return pickText(white, black)
}

// pickText chooses white only when it strictly beats black.
func pickText(white, black float64) string {
	if white > black {
		return White
	}
	return Black
}
