package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperknf/HydroScript/internal/parser"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, parser.DefaultMaxDepth, cfg.Parser.MaxDepth)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, 1, cfg.LSP.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[output]
format = "yaml"
color = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.False(t, cfg.Output.Color)
	assert.Equal(t, parser.DefaultMaxDepth, cfg.Parser.MaxDepth)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorContains(t, err, "config file not found")

	bad := writeConfig(t, dir, "[parser\nmax_depth = ")
	_, err = Load(bad)
	assert.ErrorContains(t, err, "failed to parse config")

	format := writeConfig(t, dir, "[output]\nformat = \"xml\"\n")
	_, err = Load(format)
	assert.ErrorContains(t, err, `"xml"`)

	depth := writeConfig(t, dir, "[parser]\nmax_depth = -1\n")
	_, err = Load(depth)
	assert.ErrorContains(t, err, "max_depth")
}

func TestResolve(t *testing.T) {
	t.Setenv(EnvVar, "")
	dir := t.TempDir()

	cfg, err := Resolve("", dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	writeConfig(t, dir, "[parser]\nmax_depth = 64\n")
	cfg, err = Resolve("", dir)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Parser.MaxDepth)

	other := t.TempDir()
	explicit := writeConfig(t, other, "[lsp]\nlog_level = 3\n")
	cfg, err = Resolve(explicit, dir)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.LSP.LogLevel)
	assert.Equal(t, parser.DefaultMaxDepth, cfg.Parser.MaxDepth)

	t.Setenv(EnvVar, explicit)
	cfg, err = Resolve("", dir)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.LSP.LogLevel)
}
