package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/swatch/internal/validation"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := NewLoader().WithFile(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
harmony:
  type: analogous
  count: 7
output:
  format: table
  preview: true
contrast:
  level: AAA
`)

	cfg, err := NewLoader().WithFile(path).Load()
	require.NoError(t, err)

	assert.Equal(t, "analogous", cfg.Harmony.Type)
	assert.Equal(t, 7, cfg.Harmony.Count)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.True(t, cfg.Output.Preview)
	assert.Equal(t, 8, cfg.Output.Width, "unset fields keep defaults")
	assert.Equal(t, "AAA", cfg.Contrast.Level)
	assert.Equal(t, "json", cfg.Export.Format)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "harmony:\n  type: analogous\n")
	t.Setenv(EnvType, "tetradic")
	t.Setenv(EnvCount, "3")
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvLevel, "AAA")

	cfg, err := NewLoader().WithFile(path).WithEnv().Load()
	require.NoError(t, err)

	assert.Equal(t, "tetradic", cfg.Harmony.Type)
	assert.Equal(t, 3, cfg.Harmony.Count)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "AAA", cfg.Contrast.Level)
}

func TestLoadNormalisesCase(t *testing.T) {
	path := writeConfig(t, "output:\n  format: Table\nexport:\n  format: CSS\n")
	t.Setenv(EnvType, "Triadic")
	t.Setenv(EnvLevel, "aaa")

	cfg, err := NewLoader().WithFile(path).WithEnv().Load()
	require.NoError(t, err)

	assert.Equal(t, "triadic", cfg.Harmony.Type)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "AAA", cfg.Contrast.Level)
	assert.Equal(t, "css", cfg.Export.Format)
}

func TestLoadEnvConfigPath(t *testing.T) {
	path := writeConfig(t, "contrast:\n  level: AAA\n")
	t.Setenv(EnvConfigPath, path)

	loader := NewLoader().WithEnv()
	assert.Equal(t, path, loader.Path())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "AAA", cfg.Contrast.Level)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
	}{
		{name: "unknown harmony", content: "harmony:\n  type: square\n"},
		{name: "count too large", content: "harmony:\n  count: 99\n"},
		{name: "bad format", content: "output:\n  format: xml\n"},
		{name: "bad level", content: "contrast:\n  level: A\n"},
		{name: "bad export format", content: "export:\n  format: pdf\n"},
		{name: "bad env level", content: "", env: map[string]string{EnvLevel: "AAAA"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := NewLoader().WithFile(writeConfig(t, tt.content)).WithEnv().Load()
			assert.ErrorIs(t, err, validation.ErrValidation)
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := NewLoader().WithFile(writeConfig(t, "harmony: [")).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")

	t.Setenv(EnvCount, "five")
	_, err = NewLoader().WithFile(writeConfig(t, "")).WithEnv().Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvCount)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.Harmony.Type = "triadic"
	cfg.Output.Preview = true

	require.NoError(t, Save(path, cfg))

	loaded, err := NewLoader().WithFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	cfg.Contrast.Level = "B"
	assert.Error(t, Save(path, cfg))
}
