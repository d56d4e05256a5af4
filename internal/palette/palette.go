// Package palette holds a named, tagged set of harmony colours ready for export.
package palette

import (
	"encoding/json"
	"fmt"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/harmony"
	"github.com/jmylchreest/swatch/internal/validation"
)

// MaxColors is the largest palette accepted by Validate.
const MaxColors = 24

var validator = validation.New()

// Palette is an ordered list of hex colours produced by one harmony rule.
type Palette struct {
	Name        string       `json:"name" validate:"required,max=100"`
	Colors      []string     `json:"colors" validate:"required,min=1,max=24,dive,hexcolor6"`
	HarmonyType harmony.Type `json:"harmonyType" validate:"required,harmonytype"`
	IsFavorite  bool         `json:"isFavorite"`
	Tags        []string     `json:"tags" validate:"max=16,dive,required,max=32"`
}

// New creates a palette with no tags.
func New(name string, kind harmony.Type, colors []string) *Palette {
	return &Palette{
		Name:        name,
		Colors:      colors,
		HarmonyType: kind,
		Tags:        []string{},
	}
}

// Generate builds a palette by running the harmony rule over base.
func Generate(name, base string, kind harmony.Type, count int) (*Palette, error) {
	colors, err := harmony.Generate(base, kind, count)
	if err != nil {
		return nil, fmt.Errorf("failed to generate %s palette: %w", kind, err)
	}
	return New(name, kind, colors), nil
}

// Decode parses a palette from its JSON export and validates it.
func Decode(data []byte) (*Palette, error) {
	var p Palette
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse palette: %w", err)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the palette fields. Failures are *validation.Error values.
func (p *Palette) Validate() error {
	if p == nil {
		return fmt.Errorf("palette cannot be nil")
	}
	return validator.Validate(p)
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Colours expands every hex colour into its RGB and HSL forms.
func (p *Palette) Colours() ([]colour.Colour, error) {
	out := make([]colour.Colour, len(p.Colors))
	for i, hex := range p.Colors {
		c, err := colour.NewColour(hex)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i+1, err)
		}
		out[i] = c
	}
	return out, nil
}

// TextColours returns the readable overlay text colour for each swatch.
func (p *Palette) TextColours() ([]string, error) {
	out := make([]string, len(p.Colors))
	for i, hex := range p.Colors {
		text, err := colour.BestTextColor(hex)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i+1, err)
		}
		out[i] = text
	}
	return out, nil
}

// HasTag reports whether the palette carries tag.
func (p *Palette) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends tag unless already present.
func (p *Palette) AddTag(tag string) {
	if tag == "" || p.HasTag(tag) {
		return
	}
	p.Tags = append(p.Tags, tag)
}
