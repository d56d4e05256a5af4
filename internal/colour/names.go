package colour

import "math"

// NamedColour is a reference colour with a terminal-friendly name.
type NamedColour struct {
	Name string
	RGB  RGB
}

// terminalColours is the basic 16-colour xterm palette followed by a few
// common web names. Real terminals vary slightly.
var terminalColours = []NamedColour{
	{"black", RGB{0, 0, 0}},
	{"red", RGB{205, 49, 49}},
	{"green", RGB{13, 188, 121}},
	{"yellow", RGB{229, 229, 16}},
	{"blue", RGB{36, 114, 200}},
	{"magenta", RGB{188, 63, 188}},
	{"cyan", RGB{17, 168, 205}},
	{"white", RGB{229, 229, 229}},
	{"brightblack", RGB{102, 102, 102}},
	{"brightred", RGB{241, 76, 76}},
	{"brightgreen", RGB{35, 209, 139}},
	{"brightyellow", RGB{245, 245, 67}},
	{"brightblue", RGB{59, 142, 234}},
	{"brightmagenta", RGB{214, 112, 214}},
	{"brightcyan", RGB{41, 184, 219}},
	{"brightwhite", RGB{255, 255, 255}},
	{"orange", RGB{255, 165, 0}},
	{"pink", RGB{255, 192, 203}},
	{"brown", RGB{165, 42, 42}},
	{"lime", RGB{0, 255, 0}},
	{"navy", RGB{0, 0, 128}},
	{"teal", RGB{0, 128, 128}},
	{"maroon", RGB{128, 0, 0}},
	{"olive", RGB{128, 128, 0}},
	{"violet", RGB{238, 130, 238}},
	{"indigo", RGB{75, 0, 130}},
}

// NamedColours returns a copy of the reference colours used by Nearest.
func NamedColours() []NamedColour {
	out := make([]NamedColour, len(terminalColours))
	copy(out, terminalColours)
	return out
}

// Nearest returns the reference colour closest to c.
func Nearest(c RGB) NamedColour {
	best := terminalColours[0]
	bestDist := math.MaxFloat64
	for _, nc := range terminalColours {
		if d := perceptualDistance(c, nc.RGB); d < bestDist {
			best, bestDist = nc, d
		}
	}
	return best
}

// perceptualDistance is a weighted Euclidean RGB distance that favours green,
// roughly following the eye's sensitivity.
func perceptualDistance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(2*dr*dr + 4*dg*dg + 3*db*db)
}
