package palette

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/harmony"
	"github.com/jmylchreest/swatch/internal/validation"
)

func TestGenerate(t *testing.T) {
	p, err := Generate("Sunset", "#ff0000", harmony.Triadic, 0)
	require.NoError(t, err)

	assert.Equal(t, "Sunset", p.Name)
	assert.Equal(t, harmony.Triadic, p.HarmonyType)
	assert.Equal(t, []string{"#ff0000", "#00ff00", "#0000ff"}, p.Colors)
	assert.Equal(t, 3, p.Len())
	assert.NoError(t, p.Validate())
}

func TestGenerateInvalidBase(t *testing.T) {
	_, err := Generate("Broken", "#ff00", harmony.Triadic, 0)
	assert.ErrorIs(t, err, colour.ErrInvalidColorFormat)
}

func TestValidate(t *testing.T) {
	valid := func() *Palette {
		p := New("Ocean", harmony.Analogous, []string{"#3b82f6", "#06b6d4"})
		p.Tags = []string{"blue", "calm"}
		return p
	}

	tests := []struct {
		name      string
		mutate    func(p *Palette)
		wantField string
	}{
		{name: "valid", mutate: func(*Palette) {}},
		{name: "missing name", mutate: func(p *Palette) { p.Name = "" }, wantField: "name"},
		{name: "long name", mutate: func(p *Palette) { p.Name = strings.Repeat("x", 101) }, wantField: "name"},
		{name: "no colors", mutate: func(p *Palette) { p.Colors = nil }, wantField: "colors"},
		{name: "bad color", mutate: func(p *Palette) { p.Colors[1] = "#fff" }, wantField: "colors[1]"},
		{name: "too many colors", mutate: func(p *Palette) { p.Colors = make([]string, MaxColors+1) }, wantField: "colors"},
		{name: "unknown harmony", mutate: func(p *Palette) { p.HarmonyType = "square" }, wantField: "harmonyType"},
		{name: "empty tag", mutate: func(p *Palette) { p.Tags = []string{""} }, wantField: "tags[0]"},
		{name: "long tag", mutate: func(p *Palette) { p.Tags = []string{strings.Repeat("t", 33)} }, wantField: "tags[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)

			err := p.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, validation.ErrValidation)

			var verr *validation.Error
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.wantField)
		})
	}
}

func TestValidateNil(t *testing.T) {
	var p *Palette
	assert.Error(t, p.Validate())
}

func TestColours(t *testing.T) {
	p := New("Blue", harmony.Complementary, []string{"#3B82F6", "#ffffff"})

	colours, err := p.Colours()
	require.NoError(t, err)
	require.Len(t, colours, 2)
	assert.Equal(t, colour.RGB{R: 59, G: 130, B: 246}, colours[0].RGB)
	assert.Equal(t, colour.HSL{H: 217, S: 91, L: 60}, colours[0].HSL)

	p.Colors = append(p.Colors, "nope")
	_, err = p.Colours()
	assert.ErrorIs(t, err, colour.ErrInvalidColorFormat)
}

func TestTextColours(t *testing.T) {
	p := New("Mono", harmony.Monochromatic, []string{"#000000", "#ffffff", "#1e3a8a"})

	got, err := p.TextColours()
	require.NoError(t, err)
	assert.Equal(t, []string{colour.White, colour.Black, colour.White}, got)
}

func TestTags(t *testing.T) {
	p := New("Tagged", harmony.Triadic, []string{"#ff0000"})
	p.AddTag("warm")
	p.AddTag("warm")
	p.AddTag("")

	assert.Equal(t, []string{"warm"}, p.Tags)
	assert.True(t, p.HasTag("warm"))
	assert.False(t, p.HasTag("cool"))
}

func TestDecode(t *testing.T) {
	p, err := Decode([]byte(`{"name":"Sunset","colors":["#ff0000","#00ffff"],"harmonyType":"complementary","tags":["warm"]}`))
	require.NoError(t, err)
	assert.Equal(t, "Sunset", p.Name)
	assert.Equal(t, []string{"#ff0000", "#00ffff"}, p.Colors)
	assert.Equal(t, harmony.Complementary, p.HarmonyType)
	assert.True(t, p.HasTag("warm"))

	p, err = Decode([]byte(`{"name":"Bare","colors":["#ffffff"],"harmonyType":"triadic"}`))
	require.NoError(t, err)
	assert.NotNil(t, p.Tags)

	_, err = Decode([]byte(`{not json`))
	assert.ErrorContains(t, err, "failed to parse palette")

	_, err = Decode([]byte(`{"name":"Bad","colors":["#ff"],"harmonyType":"triadic"}`))
	assert.ErrorIs(t, err, validation.ErrValidation)
}
