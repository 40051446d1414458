package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_Defaults(t *testing.T) {
	cli, err := parseFlags(nil)
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.Capacity, cli.Capacity)
	assert.Equal(t, defaults.Strategy, cli.Strategy)
	assert.False(t, cli.set.capacity)
	assert.False(t, cli.set.strategy)
}

func TestParseFlags_Overrides(t *testing.T) {
	cli, err := parseFlags([]string{"--capacity=128", "--strategy=tombstone", "--seed=42"})
	require.NoError(t, err)

	assert.Equal(t, 128, cli.Capacity)
	assert.Equal(t, "tombstone", cli.Strategy)
	assert.Equal(t, int64(42), cli.Seed)
	assert.True(t, cli.set.capacity)
	assert.True(t, cli.set.strategy)
	assert.True(t, cli.set.seed)
	assert.False(t, cli.set.operations)
}

func TestLoadConfig_FileThenCLIPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "workload.hujson")

	// HuJSON allows comments and trailing commas; both are exercised here
	// to match the pack's config-loading idiom.
	contents := `{
		// workload tuning
		"capacity": 256,
		"strategy": "tombstone",
		"operations": 5000,
	}`

	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cli, err := parseFlags([]string{"--config=" + path, "--strategy=rehash"})
	require.NoError(t, err)

	cfg, err := LoadConfig(path, cli)
	require.NoError(t, err)

	assert.Equal(t, 256, cfg.Capacity)     // from file, not overridden
	assert.Equal(t, "rehash", cfg.Strategy) // CLI override wins over file
	assert.Equal(t, 5000, cfg.Operations)  // from file
}

func TestLoadConfig_InvalidStrategy(t *testing.T) {
	cli, err := parseFlags([]string{"--strategy=bogus"})
	require.NoError(t, err)

	_, err = LoadConfig("", cli)
	assert.ErrorIs(t, err, errInvalidConfig)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cli, err := parseFlags([]string{"--config=/nonexistent/path.hujson"})
	require.NoError(t, err)

	_, err = LoadConfig("/nonexistent/path.hujson", cli)
	assert.Error(t, err)
}
