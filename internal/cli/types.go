package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/harmony"
)

func newTypesCmd(_ *app) *cobra.Command {
	var tips bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the supported harmony types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			headers := []string{"Type", "Colours", "Description"}
			if tips {
				headers = append(headers, "Tip")
			}
			table := NewTable(headers...)

			for _, t := range harmony.AllTypes() {
				size := strconv.Itoa(harmony.DefaultCount)
				if n, ok := fixedSize(t); ok {
					size = strconv.Itoa(n)
				} else {
					size += "*"
				}

				row := []string{t.String(), size, t.Description()}
				if tips {
					row = append(row, t.Tip())
				}
				table.AddRow(row...)
			}

			if _, err := table.WriteTo(cmd.OutOrStdout()); err != nil {
				return err
			}
			_, err := cmd.OutOrStdout().Write([]byte("\n* adjustable with --count\n"))
			return err
		},
	}

	cmd.Flags().BoolVar(&tips, "tips", false, "include usage tips")
	return cmd
}

// fixedSize returns the palette size of kinds that ignore --count.
func fixedSize(t harmony.Type) (int, bool) {
	switch t {
	case harmony.Complementary:
		return 2, true
	case harmony.Triadic, harmony.SplitComplementary:
		return 3, true
	case harmony.Tetradic:
		return 4, true
	default:
		return 0, false
	}
}
