package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/export"
	"github.com/jmylchreest/swatch/internal/harmony"
	"github.com/jmylchreest/swatch/internal/palette"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		kind    string
		count   int
		formats []string
		name    string
		outDir  string
		tags    []string
		bundle  bool
		stdout  bool
	)

	cmd := &cobra.Command{
		Use:   "export <hex>",
		Short: "Export a harmony palette to files",
		Long: `Generate a palette and write it in one or more export formats.

Formats: json, css, scss, tailwind, svg, hex, rgb, hsl, png

With --bundle every requested format (all of them by default) is packed into
a single .tar.xz archive.

Examples:
  # Palette as CSS custom properties in the current directory
  swatch export '#3b82f6' -t triadic --format css

  # Several formats at once into ./themes
  swatch export 3b82f6 --format css,scss,svg -o themes --name ocean

  # Everything in one archive
  swatch export '#ff6b6b' -t tetradic --bundle

  # Print the SCSS to stdout
  swatch export '#ff6b6b' --format scss --stdout`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("type") {
				kind = a.cfg.Harmony.Type
			}
			if !cmd.Flags().Changed("count") {
				count = a.cfg.Harmony.Count
			}
			if !cmd.Flags().Changed("output") {
				outDir = a.cfg.Export.Directory
			}

			var selected []export.Format
			if cmd.Flags().Changed("format") || !bundle {
				if !cmd.Flags().Changed("format") {
					formats = []string{a.cfg.Export.Format}
				}
				for _, fn := range formats {
					f, err := export.ParseFormat(fn)
					if err != nil {
						return err
					}
					selected = append(selected, f)
				}
			}

			if stdout && (bundle || len(selected) != 1) {
				return fmt.Errorf("--stdout needs exactly one format and no --bundle")
			}

			t, err := harmony.ParseType(kind)
			if err != nil {
				return err
			}
			rgb, err := colour.ParseHex(args[0])
			if err != nil {
				return err
			}
			base := rgb.Hex()

			if name == "" {
				name = fmt.Sprintf("%s %s", t.Label(), base)
			}
			p, err := palette.Generate(name, base, t, count)
			if err != nil {
				return err
			}
			for _, tag := range tags {
				p.AddTag(tag)
			}
			if err := p.Validate(); err != nil {
				return fmt.Errorf("invalid palette: %w", err)
			}

			out := cmd.OutOrStdout()

			if stdout {
				file, err := export.Export(p, selected[0])
				if err != nil {
					return err
				}
				_, err = out.Write(file.Content)
				return err
			}

			if bundle {
				path, err := writeBundle(outDir, p, selected)
				if err != nil {
					return err
				}
				a.log.Info("bundle written", "path", path)
				_, err = fmt.Fprintln(out, path)
				return err
			}

			for _, f := range selected {
				file, err := export.Export(p, f)
				if err != nil {
					return err
				}
				path, err := export.WriteFile(outDir, file)
				if err != nil {
					return err
				}
				a.log.Info("palette exported", "format", f, "path", path, "bytes", len(file.Content))
				if _, err := fmt.Fprintln(out, path); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "", "harmony type (see 'swatch types')")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "colours for analogous and monochromatic palettes (default 5)")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", nil, "export formats, comma separated (default from config: json)")
	cmd.Flags().StringVar(&name, "name", "", "palette name, also used for file names")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory (default from config: .)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tag to attach to the palette (repeatable)")
	cmd.Flags().BoolVar(&bundle, "bundle", false, "pack the formats into one .tar.xz archive")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "write a single format to stdout instead of a file")

	return cmd
}

// writeBundle writes p as a .tar.xz archive into dir and returns its path.
func writeBundle(dir string, p *palette.Palette, formats []export.Format) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, export.BundleName(p))
	f, err := os.Create(path) // #nosec G304 - path built from user-chosen directory
	if err != nil {
		return "", fmt.Errorf("failed to create bundle: %w", err)
	}

	if err := export.Bundle(f, p, formats...); err != nil {
		f.Close()
		if rmErr := os.Remove(path); rmErr != nil {
			return "", errors.Join(err, rmErr)
		}
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close bundle: %w", err)
	}
	return path, nil
}
