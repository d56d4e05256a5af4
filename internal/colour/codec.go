// Package colour converts between hex, RGB and HSL encodings and measures
// WCAG luminance and contrast.
package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidColorFormat is returned when a string is not a 6-digit hex colour.
var ErrInvalidColorFormat = errors.New("invalid hex color")

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSL represents a colour in HSL format.
// H is in degrees [0, 360), S and L are percentages [0, 100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Colour bundles the three encodings of a single colour.
type Colour struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
	HSL HSL    `json:"hsl"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// String returns the HSL colour in CSS notation, e.g. "hsl(217, 91%, 60%)".
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", hsl.H, hsl.S, hsl.L)
}

// ParseHex parses a "#rrggbb" or "rrggbb" string, case-insensitively.
// Shorthand (#rgb) and alpha (#rrggbbaa) forms are rejected.
func ParseHex(hex string) (RGB, error) {
	s := hex
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
		}
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// RGBToHex formats an RGB value as "#rrggbb".
func RGBToHex(rgb RGB) string {
	return rgb.Hex()
}

// RGBToHSL converts RGB to HSL. Each component of the result is rounded to
// the nearest integer. Greys have hue and saturation 0.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	l := (maxVal + minVal) / 2.0

	var h, s float64
	if maxVal != minVal {
		d := maxVal - minVal
		if l > 0.5 {
			s = d / (2.0 - maxVal - minVal)
		} else {
			s = d / (maxVal + minVal)
		}

		switch maxVal {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: math.Round(h * 360),
		S: math.Round(s * 100),
		L: math.Round(l * 100),
	}
}

// HSLToRGB converts HSL to RGB, rounding each channel to the nearest integer.
// Hue is scaled to [0,1] before conversion.
func HSLToRGB(hsl HSL) RGB {
	h := hsl.H / 360
	s := hsl.S / 100
	l := hsl.L / 100

	if s == 0 {
		// Achromatic (grey).
		v := channel(l)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: channel(hueToRGB(p, q, h+1.0/3)),
		G: channel(hueToRGB(p, q, h)),
		B: channel(hueToRGB(p, q, h-1.0/3)),
	}
}

// channel scales a [0,1] component to a rounded 8-bit value.
func channel(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

// hueToRGB returns one channel for hue offset t, where t is a fraction of
// the colour wheel.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// HexToHSL parses a hex colour and converts it to HSL.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}

// HSLToHex converts HSL to a "#rrggbb" string.
func HSLToHex(hsl HSL) string {
	return HSLToRGB(hsl).Hex()
}

// NewColour builds a Colour from a hex string. The Hex field keeps the
// caller's spelling.
func NewColour(hex string) (Colour, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return Colour{}, err
	}
	return Colour{
		Hex: hex,
		RGB: rgb,
		HSL: RGBToHSL(rgb),
	}, nil
}

// AdjustHue adds offset to hue and wraps the result into [0, 360).
func AdjustHue(hue, offset float64) float64 {
	result := math.Mod(hue+offset, 360)
	if result < 0 {
		result += 360
	}
	if result >= 360 {
		result -= 360
	}
	if result == 0 {
		// Normalises -0.
		return 0
	}
	return result
}
