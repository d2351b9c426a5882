package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nilbridge/sqlfront/internal/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Equal(t, "generic", cfg.Dialect)
	assert.Equal(t, 50, cfg.RecursionLimit)
	assert.True(t, cfg.Unescape)
	assert.False(t, cfg.TrailingCommas)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadReadsYAMLFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	body := "dialect: postgresql\noutput: tree\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqlfront.yaml"), []byte(body), 0o644))

	cfg, err := config.Load(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "postgresql", cfg.Dialect)
	assert.Equal(t, "tree", cfg.Output)
	assert.Equal(t, 50, cfg.RecursionLimit, "values absent from the file should keep their default")
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	body := "dialect: postgresql\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqlfront.yaml"), []byte(body), 0o644))

	t.Setenv("SQLFRONT_DIALECT", "mysql")

	cfg, err := config.Load(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.Dialect, "environment variables should outrank the config file")
}

func TestLoadAcceptsDirectFilePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom-name.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dialect: duckdb\n"), 0o644))

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "duckdb", cfg.Dialect, "a direct file path (as passed via --config) should load as-is")
}

func TestLoadChangedFlagOutranksEnvironment(t *testing.T) {
	t.Setenv("SQLFRONT_DIALECT", "mysql")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dialect", "generic", "")
	require.NoError(t, flags.Set("dialect", "snowflake"))

	cfg, err := config.Load(t.TempDir(), flags)
	require.NoError(t, err)
	assert.Equal(t, "snowflake", cfg.Dialect, "an explicitly set flag should outrank the environment")
}

func TestLoadUnchangedFlagDoesNotOverrideEnvironment(t *testing.T) {
	t.Setenv("SQLFRONT_DIALECT", "mysql")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("dialect", "generic", "")

	cfg, err := config.Load(t.TempDir(), flags)
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.Dialect, "a flag left at its zero-value default must not shadow the environment")
}

func TestLoadReadsYmlConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqlfront.yml"), []byte("dialect: sqlite\n"), 0o644))

	cfg, err := config.Load(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Dialect)
}
