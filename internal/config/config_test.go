// ABOUTME: Tests for config defaults, XDG paths, and load/save round trips.
// ABOUTME: Environment is isolated per test with t.Setenv.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "badger", cfg.GetBackend())

	cfg.Backend = "sqlite"
	assert.Equal(t, "sqlite", cfg.GetBackend())
}

func TestGetDataDirDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := &Config{}
	assert.Equal(t, filepath.Join("/tmp/xdg-data", "vish"), cfg.GetDataDir())

	cfg.DataDir = "/explicit/dir"
	assert.Equal(t, "/explicit/dir", cfg.GetDataDir())
}

func TestDataDirFallsBackToHome(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "vish"), DataDir())
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", ExpandPath(""))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "data", "vish"), ExpandPath("~/data/vish"))
	assert.Equal(t, "/absolute/path", ExpandPath("/absolute/path"))
	assert.Equal(t, "relative/path", ExpandPath("relative/path"))
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	assert.Equal(t, filepath.Join("/tmp/xdg-config", "vish", "config.json"), GetConfigPath())
}

func TestGetGoogleEnvFallbacks(t *testing.T) {
	t.Setenv("GOOGLE_PROJECT_ID", "env-project")
	t.Setenv("GOOGLE_LOCATION", "env-location")
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "/env/creds.json")

	cfg := &Config{}
	g := cfg.GetGoogle()
	assert.Equal(t, "env-project", g.ProjectID)
	assert.Equal(t, "env-location", g.Location)
	assert.Equal(t, "/env/creds.json", g.CredentialsFile)

	// Explicit config wins over the environment.
	cfg.Google.ProjectID = "file-project"
	g = cfg.GetGoogle()
	assert.Equal(t, "file-project", g.ProjectID)
	assert.Equal(t, "env-location", g.Location)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "badger", cfg.GetBackend())
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Backend: "sqlite", DataDir: "/tmp/vish-data"}
	cfg.Google.ProjectID = "my-project"
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", loaded.Backend)
	assert.Equal(t, "/tmp/vish-data", loaded.DataDir)
	assert.Equal(t, "my-project", loaded.Google.ProjectID)
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "vish", "config.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0600))

	_, err := Load()
	assert.Error(t, err)
}

func TestOpenKVUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "bogus"}
	_, err := cfg.OpenKV()
	assert.ErrorContains(t, err, "unknown backend")
}

func TestOpenKVSQLite(t *testing.T) {
	cfg := &Config{Backend: "sqlite", DataDir: t.TempDir()}

	store, err := cfg.OpenKV()
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set("k", []byte("v")))
	got, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}
