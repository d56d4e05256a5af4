package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/palette"
)

// labelMargin is the gap in pixels between a swatch's bottom edge and its label baseline.
const labelMargin = 8

// RenderPNG draws one size x size square per colour, left to right, each
// labelled with its hex code in black or white, whichever reads better.
func RenderPNG(p *palette.Palette, size int) ([]byte, error) {
	if size <= 0 {
		size = SwatchSize
	}

	img, err := swatchStrip(p, size)
	if err != nil {
		return nil, err
	}
	face := basicfont.Face7x13

	for i, hex := range p.Colors {
		rgb := hexToRGB(hex)
		rect := image.Rect(i*size, 0, (i+1)*size, size)

		text := hexToRGB(colour.BestTextColorRGB(rgb))
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(toRGBA(text)),
			Face: face,
		}
		width := d.MeasureString(hex).Round()
		x := rect.Min.X + (size-width)/2
		y := size - labelMargin
		d.Dot = fixed.P(x, y)
		d.DrawString(hex)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// swatchStrip fills one unlabelled size x size square per colour.
func swatchStrip(p *palette.Palette, size int) (*image.RGBA, error) {
	if len(p.Colors) == 0 {
		return nil, fmt.Errorf("palette has no colors")
	}

	img := image.NewRGBA(image.Rect(0, 0, size*len(p.Colors), size))
	for i, hex := range p.Colors {
		rgb, err := colour.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i+1, err)
		}
		rect := image.Rect(i*size, 0, (i+1)*size, size)
		draw.Draw(img, rect, image.NewUniform(toRGBA(rgb)), image.Point{}, draw.Src)
	}
	return img, nil
}

func toRGBA(rgb colour.RGB) color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}
