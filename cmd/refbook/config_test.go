package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesPlaceholderFile(t *testing.T) {
	configDir := filepath.Join(t.TempDir(), "refbook")

	v, err := loadConfig(configDir)
	require.NoError(t, err)

	// First run writes a template config.
	_, err = os.Stat(filepath.Join(configDir, configFileFull))
	require.NoError(t, err)

	// The shipped credentials are placeholders and must never look real.
	db := dbConfigFromViper(v)
	assert.True(t, db.IsPlaceholder(), "generated config must not trigger a connection attempt")
}

func TestLoadConfigKeepsExistingFile(t *testing.T) {
	configDir := t.TempDir()
	custom := []byte("data_dir: /somewhere/else\n")
	require.NoError(t, os.WriteFile(filepath.Join(configDir, configFileFull), custom, 0o644))

	v, err := loadConfig(configDir)
	require.NoError(t, err)
	assert.Equal(t, "/somewhere/else", v.GetString(cfgKeyDataDir))

	data, err := os.ReadFile(filepath.Join(configDir, configFileFull))
	require.NoError(t, err)
	assert.Equal(t, custom, data, "an existing config must not be overwritten")
}

func TestEnvOverridesDatabaseBlock(t *testing.T) {
	t.Setenv("DB_HOST", "db.example.com")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "ref")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "refbook")

	v, err := loadConfig(t.TempDir())
	require.NoError(t, err)

	db := dbConfigFromViper(v)
	assert.Equal(t, "db.example.com", db.Host)
	assert.Equal(t, 5433, db.Port)
	assert.False(t, db.IsPlaceholder())
}
