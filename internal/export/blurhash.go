package export

import (
	"fmt"

	"github.com/bbrks/go-blurhash"

	"github.com/jmylchreest/swatch/internal/palette"
)

// blurhashSwatch is the edge length in pixels of each colour in the image
// the placeholder hash is computed from.
const blurhashSwatch = 8

// maxComponents is the BlurHash limit per axis.
const maxComponents = 9

// Blurhash returns a BlurHash placeholder for the palette's swatch strip,
// with one horizontal component per colour up to nine.
func Blurhash(p *palette.Palette) (string, error) {
	img, err := swatchStrip(p, blurhashSwatch)
	if err != nil {
		return "", err
	}

	hash, err := blurhash.Encode(min(len(p.Colors), maxComponents), 1, img)
	if err != nil {
		return "", fmt.Errorf("encode blurhash: %w", err)
	}
	return hash, nil
}
