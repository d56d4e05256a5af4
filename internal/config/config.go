// Package config loads swatch defaults from a YAML file and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/swatch/internal/validation"
)

// Environment variables that override file values.
const (
	EnvConfigPath = "SWATCH_CONFIG"
	EnvType       = "SWATCH_TYPE"
	EnvCount      = "SWATCH_COUNT"
	EnvFormat     = "SWATCH_FORMAT"
	EnvLevel      = "SWATCH_LEVEL"
)

// Config holds user defaults for every command.
type Config struct {
	Harmony  HarmonyConfig  `yaml:"harmony"`
	Output   OutputConfig   `yaml:"output"`
	Contrast ContrastConfig `yaml:"contrast"`
	Export   ExportConfig   `yaml:"export"`
}

// HarmonyConfig holds palette generation defaults.
type HarmonyConfig struct {
	Type  string `yaml:"type" validate:"required,harmonytype"`
	Count int    `yaml:"count" validate:"gte=0,lte=24"`
}

// OutputConfig controls how palettes are printed.
type OutputConfig struct {
	Format  string `yaml:"format" validate:"required,oneof=hex rgb hsl json table list"`
	Preview bool   `yaml:"preview"`
	Width   int    `yaml:"width" validate:"gte=0,lte=64"`
}

// ContrastConfig holds the default WCAG level.
type ContrastConfig struct {
	Level string `yaml:"level" validate:"required,oneof=AA AAA"`
}

// ExportConfig holds export defaults.
type ExportConfig struct {
	Format    string `yaml:"format" validate:"required,oneof=json css scss tailwind svg hex rgb hsl png"`
	Directory string `yaml:"directory"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Harmony: HarmonyConfig{
			Type:  "complementary",
			Count: 0,
		},
		Output: OutputConfig{
			Format: "hex",
			Width:  8,
		},
		Contrast: ContrastConfig{
			Level: "AA",
		},
		Export: ExportConfig{
			Format:    "json",
			Directory: ".",
		},
	}
}

// Validate checks every section.
func (c *Config) Validate() error {
	return validation.New().Validate(c)
}

// DefaultPath returns $XDG_CONFIG_HOME/swatch/config.yaml, falling back to
// the user config directory.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "swatch", "config.yaml")
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "swatch", "config.yaml")
}

// Loader builds a Config from defaults, an optional file and the environment.
type Loader struct {
	path     string
	explicit bool
	useEnv   bool
}

// NewLoader creates a Loader that reads the default config path if it exists.
func NewLoader() *Loader {
	return &Loader{path: DefaultPath()}
}

// WithFile sets an explicit config file. Unlike the default path, an explicit
// file must exist.
func (l *Loader) WithFile(path string) *Loader {
	if path != "" {
		l.path = path
		l.explicit = true
	}
	return l
}

// WithEnv applies SWATCH_* environment overrides after the file.
// SWATCH_CONFIG, when set, is used as an explicit file path.
func (l *Loader) WithEnv() *Loader {
	l.useEnv = true
	if path := os.Getenv(EnvConfigPath); path != "" && !l.explicit {
		l.path = path
		l.explicit = true
	}
	return l
}

// Path returns the file the loader will read.
func (l *Loader) Path() string {
	return l.path
}

// Load merges defaults, file and environment, then validates the result.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	if l.path != "" {
		if err := readFile(l.path, cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) || l.explicit {
				return nil, err
			}
		}
	}

	if l.useEnv {
		if err := applyEnv(cfg); err != nil {
			return nil, err
		}
	}

	normalise(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// normalise folds names to the case the validators expect, so "Triadic"
// from a file or SWATCH_TYPE matches the same way -t Triadic does.
func normalise(cfg *Config) {
	cfg.Harmony.Type = strings.ToLower(strings.TrimSpace(cfg.Harmony.Type))
	cfg.Output.Format = strings.ToLower(strings.TrimSpace(cfg.Output.Format))
	cfg.Contrast.Level = strings.ToUpper(strings.TrimSpace(cfg.Contrast.Level))
	cfg.Export.Format = strings.ToLower(strings.TrimSpace(cfg.Export.Format))
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path) // #nosec G304 - user-specified config path
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvType); v != "" {
		cfg.Harmony.Type = v
	}
	if v := os.Getenv(EnvCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvCount, err)
		}
		cfg.Harmony.Count = n
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv(EnvLevel); v != "" {
		cfg.Contrast.Level = v
	}
	return nil
}

// Save writes cfg to path as YAML, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - config is not secret
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
