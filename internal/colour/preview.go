package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape codes for 24-bit terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns a solid block of width spaces painted in c.
func Preview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return bgEscape(c) + strings.Repeat(" ", width) + ansiReset
}

// PreviewWithText paints text centred on c, in whichever of black or white
// reads better on it.
func PreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg, _ := ParseHex(BestTextColorRGB(c))

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		left := (width - len(text)) / 2
		display = strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(text)-left)
	}

	return bgEscape(c) + fgEscape(fg) + display + ansiReset
}

// FormatWithPreview formats a colour as a preview block followed by label.
// An empty label uses the colour's hex code.
func FormatWithPreview(c RGB, label string, width int) string {
	if label == "" {
		label = c.Hex()
	}
	return fmt.Sprintf("%s %s", Preview(c, width), label)
}

// SupportsANSI reports whether colour escapes should be written to f.
// NO_COLOR (https://no-color.org) and non-terminal outputs disable them.
func SupportsANSI(f *os.File) bool {
	if f == nil {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func bgEscape(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
}

func fgEscape(c RGB) string {
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, c.R, c.G, c.B, ansiSuffix)
}
