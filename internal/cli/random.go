package cli

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/harmony"
	"github.com/jmylchreest/swatch/internal/palette"
)

func newRandomCmd(a *app) *cobra.Command {
	var (
		flags     paletteFlags
		seed      uint64
		anyColour bool
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a harmony palette from a random base colour",
		Long: `Generate a palette around a random base colour.

Random bases are drawn with saturation 60-89% and lightness 42-67% so the
palette starts from a vivid, mid-tone colour. With --any the base is drawn
from every RGB colour instead; the harmony still lifts it to 32% lightness.
Use --seed to repeat a result.

Examples:
  # Random complementary palette
  swatch random

  # Reproducible random split-complementary palette
  swatch random -t split-complementary --seed 42

  # Base drawn from the full colour range
  swatch random --any -f table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := flags.resolve(cmd, a)
			if err != nil {
				return err
			}

			var src rand.Source
			if cmd.Flags().Changed("seed") {
				src = rand.NewPCG(seed, seed)
			}
			gen := harmony.NewGenerator(src)

			base := gen.RandomBase()
			if anyColour {
				base = gen.AnyBase()
			}
			a.log.Debug("random base", "hex", base, "seeded", src != nil, "any", anyColour)

			p, err := palette.Generate(flags.paletteName(kind, base), base, kind, flags.count)
			if err != nil {
				return err
			}
			return flags.print(cmd, a, p)
		},
	}

	flags.register(cmd)
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for a reproducible palette")
	cmd.Flags().BoolVar(&anyColour, "any", false, "draw the base from every RGB colour, not just vivid mid-tones")

	return cmd
}
