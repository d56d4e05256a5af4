package export

import (
	"archive/tar"
	"bytes"
	"encoding/json"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/swatch/internal/harmony"
	"github.com/jmylchreest/swatch/internal/palette"
	"github.com/jmylchreest/swatch/internal/validation"
)

func testPalette() *palette.Palette {
	p := palette.New("Sunset", harmony.Triadic, []string{"#ff0000", "#00ff00", "#0000ff"})
	p.Tags = []string{"warm"}
	return p
}

func TestExportCSS(t *testing.T) {
	f, err := Export(testPalette(), FormatCSS)
	require.NoError(t, err)

	assert.Equal(t, "sunset.css", f.Name)
	assert.Equal(t, "text/css", f.MimeType)
	assert.Equal(t, ":root {\n"+
		"  --color-1: #ff0000;\n"+
		"  --color-2: #00ff00;\n"+
		"  --color-3: #0000ff;\n"+
		"}\n\n"+
		"/* Sunset - triadic harmony */\n", string(f.Content))
}

func TestExportSCSS(t *testing.T) {
	f, err := Export(testPalette(), FormatSCSS)
	require.NoError(t, err)

	assert.Equal(t, "sunset.scss", f.Name)
	assert.Equal(t, "// Sunset - triadic harmony\n\n"+
		"$color-1: #ff0000;\n"+
		"$color-2: #00ff00;\n"+
		"$color-3: #0000ff;\n", string(f.Content))
}

func TestExportTailwind(t *testing.T) {
	f, err := Export(testPalette(), FormatTailwind)
	require.NoError(t, err)

	assert.Equal(t, "globals.css", f.Name)
	content := string(f.Content)
	assert.Contains(t, content, "@import \"tailwindcss\";")
	assert.Contains(t, content, "@theme {\n  --color-palette-1: #ff0000;\n  --color-palette-2: #00ff00;\n  --color-palette-3: #0000ff;\n}")
}

func TestExportSVG(t *testing.T) {
	p := testPalette()
	p.Name = "Fish & Chips"

	f, err := Export(p, FormatSVG)
	require.NoError(t, err)

	assert.Equal(t, "fish---chips.svg", f.Name)
	assert.Equal(t, "image/svg+xml", f.MimeType)
	assert.Equal(t, `<svg width="300" height="100" xmlns="http://www.w3.org/2000/svg">
  <title>Fish &amp; Chips</title>
  <rect x="0" y="0" width="100" height="100" fill="#ff0000"/>
  <rect x="100" y="0" width="100" height="100" fill="#00ff00"/>
  <rect x="200" y="0" width="100" height="100" fill="#0000ff"/>
</svg>
`, string(f.Content))
}

func TestExportJSON(t *testing.T) {
	f, err := Export(testPalette(), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "sunset.json", f.Name)

	var got map[string]any
	require.NoError(t, json.Unmarshal(f.Content, &got))
	assert.Equal(t, "Sunset", got["name"])
	assert.Equal(t, "triadic", got["harmonyType"])
	assert.Equal(t, []any{"#ff0000", "#00ff00", "#0000ff"}, got["colors"])
	assert.Equal(t, []any{"warm"}, got["tags"])
	assert.NotContains(t, got, "isFavorite")
	assert.IsType(t, "", got["blurhash"])
	assert.Contains(t, string(f.Content), "\n  \"name\": \"Sunset\"")
}

func TestColourList(t *testing.T) {
	p := palette.New("Blue", harmony.Complementary, []string{"#3b82f6", "#f6af3b"})

	tests := []struct {
		format Format
		want   string
	}{
		{FormatHex, "#3b82f6, #f6af3b"},
		{FormatRGB, "rgb(59, 130, 246), rgb(246, 175, 59)"},
		{FormatHSL, "hsl(217, 91%, 60%), hsl(37, 91%, 60%)"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			got, err := ColourList(p, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			f, err := Export(p, tt.format)
			require.NoError(t, err)
			assert.Equal(t, "blue.txt", f.Name)
			assert.Equal(t, tt.want+"\n", string(f.Content))
		})
	}

	_, err := ColourList(p, FormatCSS)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestExportPNG(t *testing.T) {
	f, err := Export(testPalette(), FormatPNG)
	require.NoError(t, err)
	assert.Equal(t, "sunset.png", f.Name)

	img, err := png.Decode(bytes.NewReader(f.Content))
	require.NoError(t, err)
	assert.Equal(t, 3*SwatchSize, img.Bounds().Dx())
	assert.Equal(t, SwatchSize, img.Bounds().Dy())

	// The top-left corner of each swatch is unlabelled.
	for i, want := range []colourRGB{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}} {
		r, g, b, _ := img.At(i*SwatchSize+2, 2).RGBA()
		assert.Equal(t, want, colourRGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}, "swatch %d", i)
	}
}

type colourRGB struct{ R, G, B uint8 }

func TestExportInvalid(t *testing.T) {
	p := testPalette()
	p.Colors = []string{"#ff0000", "red"}

	_, err := Export(p, FormatCSS)
	assert.ErrorIs(t, err, validation.ErrValidation)

	_, err = Export(testPalette(), Format("pdf"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseFormat(" SCSS ")
	require.NoError(t, err)
	assert.Equal(t, FormatSCSS, got)

	_, err = ParseFormat("pdf")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"Sunset":         "sunset",
		"My Palette #1":  "my-palette--1",
		"café":           "caf-",
		"already-clean9": "already-clean9",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitizeFilename(in), in)
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	f, err := Export(testPalette(), FormatHex)
	require.NoError(t, err)

	path, err := WriteFile(dir, f)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sunset.txt"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f.Content, content)
}

func TestBundle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Bundle(&buf, testPalette(), FormatCSS, FormatHex, FormatRGB, FormatPNG))

	xzr, err := xz.NewReader(&buf)
	require.NoError(t, err)
	tr := tar.NewReader(xzr)

	contents := map[string][]byte{}
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(tr)
		require.NoError(t, err)
		contents[header.Name] = data
	}

	assert.Len(t, contents, 4)
	assert.Contains(t, contents, "sunset.css")
	assert.Contains(t, contents, "sunset.png")
	assert.Equal(t, "#ff0000, #00ff00, #0000ff\n", string(contents["sunset.txt"]))
	assert.Equal(t, "rgb(255, 0, 0), rgb(0, 255, 0), rgb(0, 0, 255)\n", string(contents["rgb-sunset.txt"]))
	assert.Equal(t, "sunset.tar.xz", BundleName(testPalette()))
}

func TestBundleAllFormats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Bundle(&buf, testPalette()))
	assert.NotZero(t, buf.Len())
}

func TestBlurhash(t *testing.T) {
	hash, err := Blurhash(testPalette())
	require.NoError(t, err)

	// Three x-components, one y-component: 6 chars plus 2 per AC component.
	assert.Len(t, hash, 10)
	assert.Equal(t, byte('2'), hash[0])

	again, err := Blurhash(testPalette())
	require.NoError(t, err)
	assert.Equal(t, hash, again)

	wide := palette.New("Wide", harmony.Analogous, make([]string, 12))
	for i := range wide.Colors {
		wide.Colors[i] = "#3b82f6"
	}
	hash, err = Blurhash(wide)
	require.NoError(t, err)
	assert.Equal(t, byte('8'), hash[0])

	_, err = Blurhash(palette.New("Empty", harmony.Triadic, nil))
	assert.Error(t, err)
}
