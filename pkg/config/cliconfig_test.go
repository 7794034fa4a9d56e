package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCLIConfigMissingFile(t *testing.T) {
	cfg, err := ReadCLIConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Endpoint)
	assert.Empty(t, cfg.Token)
}

func TestReadCLIConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"endpoint":"https://api.example","token":"tok_abc"}`), 0600))

	cfg, err := ReadCLIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example", cfg.Endpoint)
	assert.Equal(t, "tok_abc", cfg.Token)
	assert.Equal(t, path, cfg.Location())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := ReadCLIConfig(path)
	require.NoError(t, err)
	cfg.Token = "tok_new"
	require.NoError(t, cfg.Save())

	cfg, err = ReadCLIConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "tok_new", cfg.Token)
}

func TestReadCLIConfigCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0600))

	_, err := ReadCLIConfig(path)
	require.Error(t, err)
}
