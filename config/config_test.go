package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvAdminURL, "")
	t.Setenv(EnvRetailURL, "")
	t.Setenv(EnvConfigFile, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.AdminAPIURL)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, cfg, AppConfig)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "shopadmin.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("admin_api_url: https://admin.example.com/\nretail_api_url: https://retail.example.com\nlog_level: debug\n"), 0o600))

	t.Setenv(EnvConfigFile, yamlPath)
	t.Setenv(EnvRetailURL, "https://override.example.com/")
	t.Setenv(EnvAdminURL, "")
	t.Setenv(EnvTimeout, "5s")

	cfg, err := Load(filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "https://admin.example.com", cfg.AdminAPIURL)
	assert.Equal(t, "https://override.example.com", cfg.RetailAPIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte(EnvToken+"=secret-token\n"), 0o600))

	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvToken, "")
	require.NoError(t, os.Unsetenv(EnvToken))

	cfg, err := Load(envPath)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", cfg.APIToken)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvDebounce, "soon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvDebounce)
}
