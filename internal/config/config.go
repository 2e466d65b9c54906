// ABOUTME: Vish configuration with storage backend selection and provider settings.
// ABOUTME: JSON config under XDG config dir; factory function opens the KV backend.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vishlabs/vish/internal/analyzer"
	"github.com/vishlabs/vish/internal/kv"
)

// Config stores vish tool configuration.
type Config struct {
	// Backend selects the persistence backend: "badger" (default),
	// "sqlite", or "charm" for Charm Cloud sync.
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for local data storage. Supports ~
	// expansion. Defaults to ~/.local/share/vish.
	DataDir string `json:"data_dir,omitempty"`

	// Google configures the Vertex AI analysis provider.
	Google analyzer.GoogleConfig `json:"google,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "badger".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "badger"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetGoogle returns provider settings with environment fallbacks applied.
func (c *Config) GetGoogle() analyzer.GoogleConfig {
	g := c.Google
	if g.ProjectID == "" {
		g.ProjectID = os.Getenv("GOOGLE_PROJECT_ID")
	}
	if g.Location == "" {
		g.Location = os.Getenv("GOOGLE_LOCATION")
	}
	if g.CredentialsFile == "" {
		g.CredentialsFile = os.Getenv("GOOGLE_CREDENTIALS_FILE")
	}
	return g
}

// OpenKV creates the persistence collaborator for the configured backend.
func (c *Config) OpenKV() (kv.Store, error) {
	switch c.GetBackend() {
	case "badger":
		return kv.OpenBadger(filepath.Join(c.GetDataDir(), "badger"))
	case "sqlite":
		return kv.OpenSQLite(filepath.Join(c.GetDataDir(), "vish.db"))
	case "charm":
		return kv.OpenCharm("vish")
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

// DataDir returns the default data directory following the XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "vish")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "vish", "config.json")
}

// Load reads config from disk. A missing file yields defaults.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
