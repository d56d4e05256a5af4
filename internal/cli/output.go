package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/export"
	"github.com/jmylchreest/swatch/internal/harmony"
	"github.com/jmylchreest/swatch/internal/palette"
)

// Print formats for palettes written to stdout.
const (
	printHex   = "hex"
	printRGB   = "rgb"
	printHSL   = "hsl"
	printJSON  = "json"
	printTable = "table"
	printList  = "list"
)

// outputFlags control how a palette is printed.
type outputFlags struct {
	format  string
	preview bool
	width   int
}

func (f *outputFlags) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("output", pflag.ContinueOnError)
	fs.StringVarP(&f.format, "format", "f", "", "output format (hex, rgb, hsl, json, table, list)")
	fs.BoolVar(&f.preview, "preview", false, "show colour previews in terminal")
	fs.IntVar(&f.width, "width", 0, "preview swatch width in characters")
	return fs
}

func (f *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().AddFlagSet(f.flagSet())
}

// resolve fills unset flags from the configuration and validates them.
func (f *outputFlags) resolve(cmd *cobra.Command, a *app) error {
	if !cmd.Flags().Changed("format") {
		f.format = a.cfg.Output.Format
	}
	if !cmd.Flags().Changed("preview") {
		f.preview = a.cfg.Output.Preview
	}
	if !cmd.Flags().Changed("width") {
		f.width = a.cfg.Output.Width
	}

	switch f.format {
	case printHex, printRGB, printHSL, printJSON, printTable, printList:
	default:
		return fmt.Errorf("unknown output format %q (supported: hex, rgb, hsl, json, table, list)", f.format)
	}
	return nil
}

// print writes p to cmd's output.
func (f *outputFlags) print(cmd *cobra.Command, a *app, p *palette.Palette) error {
	return printPalette(cmd.OutOrStdout(), p, f.format, f.preview && a.colourEnabled(), f.width)
}

// paletteFlags are the generation and output flags shared by harmony and random.
type paletteFlags struct {
	outputFlags
	kind  string
	count int
	name  string
}

func (f *paletteFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.kind, "type", "t", "", "harmony type (see 'swatch types')")
	cmd.Flags().IntVarP(&f.count, "count", "n", 0, "colours for analogous and monochromatic palettes (default 5)")
	cmd.Flags().StringVar(&f.name, "name", "", "palette name (default: derived from type and base)")
	f.outputFlags.register(cmd)
}

// resolve fills unset flags from the configuration and validates them.
func (f *paletteFlags) resolve(cmd *cobra.Command, a *app) (harmony.Type, error) {
	if !cmd.Flags().Changed("type") {
		f.kind = a.cfg.Harmony.Type
	}
	if !cmd.Flags().Changed("count") {
		f.count = a.cfg.Harmony.Count
	}

	kind, err := harmony.ParseType(f.kind)
	if err != nil {
		return "", err
	}
	if f.count < 0 || f.count > palette.MaxColors {
		return "", fmt.Errorf("count must be between 0 and %d, got %d", palette.MaxColors, f.count)
	}
	if err := f.outputFlags.resolve(cmd, a); err != nil {
		return "", err
	}
	return kind, nil
}

func (f *paletteFlags) paletteName(kind harmony.Type, base string) string {
	if f.name != "" {
		return f.name
	}
	return fmt.Sprintf("%s %s", kind.Label(), base)
}

// printPalette writes p to w in the requested format.
func printPalette(w io.Writer, p *palette.Palette, format string, preview bool, width int) error {
	switch format {
	case printJSON:
		file, err := export.Export(p, export.FormatJSON)
		if err != nil {
			return err
		}
		_, err = w.Write(file.Content)
		return err
	case printList:
		list, err := export.ColourList(p, export.FormatHex)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, list)
		return err
	case printTable:
		return writeColourTable(w, p, preview, width)
	}

	colours, err := p.Colours()
	if err != nil {
		return err
	}

	for _, c := range colours {
		var text string
		switch format {
		case printRGB:
			text = c.RGB.String()
		case printHSL:
			text = c.HSL.String()
		default:
			text = c.Hex
		}
		if preview {
			text = colour.FormatWithPreview(c.RGB, text, width)
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}

func writeColourTable(w io.Writer, p *palette.Palette, preview bool, width int) error {
	colours, err := p.Colours()
	if err != nil {
		return err
	}
	texts, err := p.TextColours()
	if err != nil {
		return err
	}

	headers := []string{"#", "Hex", "RGB", "HSL", "Text"}
	if preview {
		headers = append([]string{"Preview"}, headers...)
	}

	table := NewTable(headers...)
	if preview {
		table.AlignColumn(1, AlignRight)
	} else {
		table.AlignColumn(0, AlignRight)
	}

	for i, c := range colours {
		row := []string{
			strconv.Itoa(i + 1),
			c.Hex,
			c.RGB.String(),
			c.HSL.String(),
			texts[i],
		}
		if preview {
			row = append([]string{colour.PreviewWithText(c.RGB, "Aa", width)}, row...)
		}
		table.AddRow(row...)
	}

	_, err = table.WriteTo(w)
	return err
}
