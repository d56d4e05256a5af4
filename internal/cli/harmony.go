package cli

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/image"
	"github.com/jmylchreest/swatch/internal/palette"
)

// imageClusters is the number of k-means clusters used to find an image's
// dominant colour.
const imageClusters = 5

func newHarmonyCmd(a *app) *cobra.Command {
	var (
		flags     paletteFlags
		fromImage string
	)

	cmd := &cobra.Command{
		Use:   "harmony [hex]",
		Short: "Generate a harmony palette from a base colour",
		Long: `Generate a palette from a base colour using a colour-wheel harmony.

The base colour is a 6-digit hex value, with or without a leading '#'.
With --from-image the base is the dominant colour of an image instead.

Examples:
  # Complementary palette (default)
  swatch harmony '#3b82f6'

  # Seven analogous colours with terminal previews
  swatch harmony 3b82f6 -t analogous -n 7 --preview

  # Triadic palette as a table
  swatch harmony '#ff0000' -t triadic -f table

  # Base colour taken from a wallpaper
  swatch harmony --from-image wallpaper.jpg -t tetradic`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := flags.resolve(cmd, a)
			if err != nil {
				return err
			}

			var input string
			switch {
			case fromImage != "" && len(args) > 0:
				return errors.New("give either a base colour or --from-image, not both")
			case fromImage != "":
				input, err = dominantColour(a, fromImage)
				if err != nil {
					return err
				}
			case len(args) == 1:
				input = args[0]
			default:
				return errors.New("a base colour or --from-image is required")
			}

			rgb, err := colour.ParseHex(input)
			if err != nil {
				return err
			}
			base := rgb.Hex()

			a.log.Debug("generating palette", "type", kind, "count", flags.count, "base", base)
			p, err := palette.Generate(flags.paletteName(kind, base), base, kind, flags.count)
			if err != nil {
				return err
			}
			a.log.Debug("palette generated", "colours", p.Len())

			return flags.print(cmd, a, p)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&fromImage, "from-image", "", "use the dominant colour of an image (JPEG, PNG, GIF, WebP) as the base")

	return cmd
}

// dominantColour loads path and returns its most common colour as hex.
func dominantColour(a *app, path string) (string, error) {
	if !image.IsSupported(path) {
		return "", fmt.Errorf("unsupported image format %q (supported: %s)",
			filepath.Ext(path), strings.Join(image.SupportedExtensions(), ", "))
	}

	a.log.Debug("loading image", "path", path)
	img, err := image.Load(path)
	if err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	a.log.Debug("image loaded", "width", bounds.Dx(), "height", bounds.Dy())

	// A fixed seed keeps the result stable for a given image.
	hex, err := image.Dominant(img, imageClusters, rand.New(rand.NewPCG(1, 1)))
	if err != nil {
		return "", fmt.Errorf("failed to extract dominant colour: %w", err)
	}
	a.log.Info("dominant colour", "hex", hex)
	return hex, nil
}
