package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <hex>...",
		Short: "Show hex, RGB, HSL and luminance for colours",
		Long: `Show each colour as hex, RGB and HSL along with its WCAG relative
luminance, the text colour that reads best on it and the nearest basic
terminal colour.

Examples:
  swatch convert '#3b82f6'
  swatch convert ff0000 00ff00 0000ff`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := NewTable("Hex", "RGB", "HSL", "Luminance", "Text", "Nearest").AlignColumn(3, AlignRight)
			for _, arg := range args {
				c, err := colour.NewColour(arg)
				if err != nil {
					return err
				}
				table.AddRow(
					c.RGB.Hex(),
					c.RGB.String(),
					c.HSL.String(),
					fmt.Sprintf("%.4f", colour.RelativeLuminance(c.RGB)),
					colour.BestTextColorRGB(c.RGB),
					colour.Nearest(c.RGB).Name,
				)
			}
			a.log.Debug("converted colours", "count", table.Len())
			_, err := table.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}
