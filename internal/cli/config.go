package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/swatch/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the swatch configuration file",
		Long: `Manage the swatch configuration file.

The file is looked up at --config, then $SWATCH_CONFIG, then
$XDG_CONFIG_HOME/swatch/config.yaml.`,
		Args: cobra.NoArgs,
		// The file may not exist yet, so only the logger is set up here.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.setupLogger(cmd)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newConfigInitCmd(a), newConfigPathCmd(a))
	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration to the config file",
		Long: `Write the built-in defaults to the config file so they can be edited.

An existing file is left alone unless --force is given.

Examples:
  # Create $XDG_CONFIG_HOME/swatch/config.yaml
  swatch config init

  # Reset a project-local config
  swatch --config ./swatch.yaml config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.loader().Path()
			if path == "" {
				return errors.New("no config path: set --config or XDG_CONFIG_HOME")
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to stat config file: %w", err)
			}

			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			a.log.Info("config written", "path", path)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func newConfigPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), a.loader().Path())
			return err
		},
	}
}
