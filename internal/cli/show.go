package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/compression"
	"github.com/jmylchreest/swatch/internal/palette"
)

func newShowCmd(a *app) *cobra.Command {
	var flags outputFlags

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a previously exported palette",
		Long: `Print a palette saved by 'swatch export --format json', either as the
JSON file itself or from inside a bundle (.tar.xz, .tar.gz, .zip) or a
compressed .json.xz / .json.gz file.

Examples:
  swatch show ocean.json -f table --preview
  swatch show sunset.tar.xz`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.resolve(cmd, a); err != nil {
				return err
			}

			path := args[0]
			data, err := os.ReadFile(path) // #nosec G304 - user-specified palette file
			if err != nil {
				return fmt.Errorf("failed to read palette file: %w", err)
			}

			kind := compression.DetectKind(path)
			a.log.Debug("reading palette", "path", path, "container", kind)

			entry, err := compression.FindFile(data, path, compression.HasSuffix(".json"))
			if err != nil {
				return fmt.Errorf("failed to find palette in %s: %w", path, err)
			}

			p, err := palette.Decode(entry.Content)
			if err != nil {
				return fmt.Errorf("invalid palette in %s: %w", entry.Name, err)
			}
			a.log.Debug("palette loaded", "name", p.Name, "type", p.HarmonyType, "colours", p.Len())

			return flags.print(cmd, a, p)
		},
	}

	flags.register(cmd)
	return cmd
}
