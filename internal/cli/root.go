// Package cli provides the command-line interface for swatch.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/config"
	"github.com/jmylchreest/swatch/internal/logger"
	"github.com/jmylchreest/swatch/internal/version"
)

// app carries state shared by every subcommand of one root command.
type app struct {
	configPath string
	verbose    bool
	quiet      bool
	noColor    bool

	cfg *config.Config
	log hclog.Logger
}

// NewRootCmd builds the swatch command tree. Each call returns an
// independent tree, so tests can run commands side by side.
func NewRootCmd() *cobra.Command {
	a := &app{
		cfg: config.Default(),
		log: logger.Discard(),
	}

	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "A colour harmony palette generator",
		Long: `swatch generates colour palettes from a base colour using classic
colour-wheel harmonies, checks WCAG text contrast, and exports palettes as
CSS, SCSS, Tailwind, SVG, PNG and JSON.

Every harmony keeps its colours at 32% lightness or above so palettes stay
readable on dark backgrounds.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/swatch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable ANSI colour output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(
		newHarmonyCmd(a),
		newRandomCmd(a),
		newContrastCmd(a),
		newTextColorCmd(a),
		newConvertCmd(a),
		newExportCmd(a),
		newShowCmd(a),
		newTypesCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// setup builds the logger and loads configuration before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.setupLogger(cmd)

	loader := a.loader()
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg
	a.log.Debug("configuration loaded", "path", loader.Path())
	return nil
}

func (a *app) setupLogger(cmd *cobra.Command) {
	stderr := cmd.ErrOrStderr()
	a.log = logger.New(logger.Options{
		Verbose: a.verbose,
		Quiet:   a.quiet,
		Color:   !a.noColor && isTerminal(stderr),
		Output:  stderr,
	})
}

// loader resolves the config file from --config, SWATCH_CONFIG or the default path.
func (a *app) loader() *config.Loader {
	return config.NewLoader().WithFile(a.configPath).WithEnv()
}

// colourEnabled reports whether ANSI previews may be written.
func (a *app) colourEnabled() bool {
	return !a.noColor
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && colour.SupportsANSI(f)
}

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			if !asJSON {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), info)
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print build information as JSON")
	return cmd
}
