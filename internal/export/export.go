// Package export renders palettes as JSON, stylesheets, SVG, PNG and plain
// colour lists, and bundles several renderings into a .tar.xz archive.
package export

import (
	"bytes"
	"embed"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/palette"
)

//go:embed templates/*.tmpl
var templates embed.FS

// ErrUnknownFormat is returned for format names outside AllFormats.
var ErrUnknownFormat = errors.New("unknown export format")

// Format names an export rendering.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSS      Format = "css"
	FormatSCSS     Format = "scss"
	FormatTailwind Format = "tailwind"
	FormatSVG      Format = "svg"
	FormatHex      Format = "hex"
	FormatRGB      Format = "rgb"
	FormatHSL      Format = "hsl"
	FormatPNG      Format = "png"
)

// SwatchSize is the edge length in pixels of one colour in SVG and PNG exports.
const SwatchSize = 100

// AllFormats returns every supported format.
func AllFormats() []Format {
	return []Format{
		FormatJSON, FormatCSS, FormatSCSS, FormatTailwind, FormatSVG,
		FormatHex, FormatRGB, FormatHSL, FormatPNG,
	}
}

// ParseFormat converts a name into a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, valid := range AllFormats() {
		if f == valid {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, name, formatNames())
}

func formatNames() string {
	names := make([]string, 0, len(AllFormats()))
	for _, f := range AllFormats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// File is one rendered export.
type File struct {
	Name     string
	MimeType string
	Content  []byte
}

// Export renders p in format f. The palette is validated first.
func Export(p *palette.Palette, f Format) (*File, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid palette: %w", err)
	}

	base := SanitizeFilename(p.Name)

	switch f {
	case FormatJSON:
		content, err := exportJSON(p)
		if err != nil {
			return nil, err
		}
		return &File{Name: base + ".json", MimeType: "application/json", Content: content}, nil
	case FormatCSS:
		return renderTemplate(p, "css.tmpl", base+".css", "text/css")
	case FormatSCSS:
		return renderTemplate(p, "scss.tmpl", base+".scss", "text/plain")
	case FormatTailwind:
		return renderTemplate(p, "tailwind.tmpl", "globals.css", "text/css")
	case FormatSVG:
		return renderTemplate(p, "svg.tmpl", base+".svg", "image/svg+xml")
	case FormatHex, FormatRGB, FormatHSL:
		content, err := colourList(p, f)
		if err != nil {
			return nil, err
		}
		return &File{Name: base + ".txt", MimeType: "text/plain", Content: content}, nil
	case FormatPNG:
		content, err := RenderPNG(p, SwatchSize)
		if err != nil {
			return nil, err
		}
		return &File{Name: base + ".png", MimeType: "image/png", Content: content}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// jsonPalette is the exported subset of a palette.
type jsonPalette struct {
	Name        string   `json:"name"`
	Colors      []string `json:"colors"`
	HarmonyType string   `json:"harmonyType"`
	Tags        []string `json:"tags"`
	Blurhash    string   `json:"blurhash,omitempty"`
}

func exportJSON(p *palette.Palette) ([]byte, error) {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	hash, err := Blurhash(p)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(jsonPalette{
		Name:        p.Name,
		Colors:      p.Colors,
		HarmonyType: string(p.HarmonyType),
		Tags:        tags,
		Blurhash:    hash,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal palette: %w", err)
	}
	return append(data, '\n'), nil
}

// templateData is passed to every text template.
type templateData struct {
	Name        string
	HarmonyType string
	Colors      []string
	Size        int
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"inc": func(i int) int { return i + 1 },
		"mul": func(a, b int) int { return a * b },
		"xml": func(s string) (string, error) {
			var buf bytes.Buffer
			if err := xml.EscapeText(&buf, []byte(s)); err != nil {
				return "", err
			}
			return buf.String(), nil
		},
	}
}

func renderTemplate(p *palette.Palette, tmplName, fileName, mimeType string) (*File, error) {
	tmplContent, err := templates.ReadFile("templates/" + tmplName)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", tmplName, err)
	}

	tmpl, err := template.New(tmplName).Funcs(templateFuncs()).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", tmplName, err)
	}

	data := templateData{
		Name:        p.Name,
		HarmonyType: string(p.HarmonyType),
		Colors:      p.Colors,
		Size:        SwatchSize,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", tmplName, err)
	}

	return &File{Name: fileName, MimeType: mimeType, Content: buf.Bytes()}, nil
}

// colourList renders the palette as a comma separated list in hex, rgb or hsl notation.
func colourList(p *palette.Palette, f Format) ([]byte, error) {
	if f == FormatHex {
		return []byte(strings.Join(p.Colors, ", ") + "\n"), nil
	}

	colours, err := p.Colours()
	if err != nil {
		return nil, err
	}

	parts := make([]string, len(colours))
	for i, c := range colours {
		if f == FormatRGB {
			parts[i] = c.RGB.String()
		} else {
			parts[i] = c.HSL.String()
		}
	}
	return []byte(strings.Join(parts, ", ") + "\n"), nil
}

// ColourList is the clipboard-style rendering: every colour joined by ", ".
func ColourList(p *palette.Palette, f Format) (string, error) {
	switch f {
	case FormatHex, FormatRGB, FormatHSL:
	default:
		return "", fmt.Errorf("%w: %q is not a colour list format", ErrUnknownFormat, f)
	}
	content, err := colourList(p, f)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(content), "\n"), nil
}

// SanitizeFilename lower-cases name and replaces every character other than
// an ASCII letter or digit with '-'.
func SanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// WriteFile writes f into dir and returns the path written.
func WriteFile(dir string, f *File) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, f.Name)
	if err := os.WriteFile(path, f.Content, 0o644); err != nil { // #nosec G306 - exported palettes are not secret
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// hexToRGB parses a palette colour that has already passed validation.
func hexToRGB(hex string) colour.RGB {
	rgb, _ := colour.ParseHex(hex)
	return rgb
}
