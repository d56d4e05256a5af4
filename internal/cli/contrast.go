package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
)

func newContrastCmd(a *app) *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "contrast <text> <background>",
		Short: "Check the WCAG contrast ratio of text on a background",
		Long: `Compute the WCAG 2.0 contrast ratio between a text colour and a
background colour and report whether it meets the AA (4.5:1) or AAA (7:1)
level for normal text.

A failing ratio is reported, not treated as an error.

Examples:
  swatch contrast '#767676' '#ffffff'
  swatch contrast 000000 3b82f6 --level AAA`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("level") {
				level = a.cfg.Contrast.Level
			}
			lvl := colour.Level(strings.ToUpper(strings.TrimSpace(level)))
			if lvl != colour.LevelAAA {
				lvl = colour.LevelAA
			}

			ratio, err := colour.ContrastRatio(args[0], args[1])
			if err != nil {
				return err
			}
			pass, err := colour.HasGoodContrast(args[0], args[1], lvl)
			if err != nil {
				return err
			}
			a.log.Debug("contrast computed", "text", args[0], "background", args[1], "ratio", ratio)

			result := "fail"
			if pass {
				result = "pass"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%.2f:1 %s %s (needs %.1f:1)\n",
				ratio, lvl, result, lvl.Threshold())
			return err
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "AA", "WCAG level (AA, AAA)")
	return cmd
}

func newTextColorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "text-color <background>",
		Aliases: []string{"text-colour"},
		Short:   "Print the more readable text colour (black or white) for a background",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			best, err := colour.BestTextColor(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("best text colour", "background", args[0], "text", best)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), best)
			return err
		},
	}
}
