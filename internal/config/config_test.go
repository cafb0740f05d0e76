package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Andlon/numeric-literals/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".numlit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	require.Equal(t, config.DefaultColor, cfg.Color)
	require.Equal(t, config.DefaultOutputSuffix, cfg.Output.Suffix)
	require.Equal(t, config.DefaultOutputInPlace, cfg.Output.InPlace)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `color: never
output:
  suffix: .gen.rs
  in_place: false
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "never", cfg.Color)
	require.Equal(t, ".gen.rs", cfg.Output.Suffix)
	require.False(t, cfg.Output.InPlace)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "color: always\n")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "always", cfg.Color)
	require.Equal(t, config.DefaultOutputSuffix, cfg.Output.Suffix)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("NUMLIT_COLOR", "never")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "never", cfg.Color)
}

func TestLoadConfigRejectsInvalidColor(t *testing.T) {
	path := writeConfig(t, "color: sometimes\n")

	_, err := config.LoadConfig(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid color mode")
}

func TestValidateSuffix(t *testing.T) {
	cfg := &config.Config{Color: "auto"}
	require.Error(t, cfg.Validate(), "empty suffix without in-place must fail")

	cfg.Output.InPlace = true
	require.NoError(t, cfg.Validate())

	cfg.Output.InPlace = false
	cfg.Output.Suffix = ".expanded.rs"
	require.NoError(t, cfg.Validate())
}
