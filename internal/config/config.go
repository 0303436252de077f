// ABOUTME: Runlog configuration with storage backend selection.
// ABOUTME: Handles settings, data paths, and the store factory function.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/runlog/internal/store"
)

// Config stores runlog tool configuration.
type Config struct {
	// Backend selects the storage backend: "badger" (default), "sqlite",
	// or "charm" (synced via Charm Cloud).
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for local data storage. Badger keeps
	// its database here; SQLite puts runlog.db here. Supports ~ expansion.
	// Defaults to ~/.local/share/runlog.
	DataDir string `json:"data_dir,omitempty"`
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
		return store.DataDir()
	}
	return ExpandPath(c.DataDir)
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

// OpenStore creates a Store implementation based on the configured backend.
func (c *Config) OpenStore() (store.Store, error) {
	switch c.GetBackend() {
	case "badger":
		return store.OpenBadger(filepath.Join(c.GetDataDir(), "badger"))
	case "sqlite":
		return store.OpenSQLite(filepath.Join(c.GetDataDir(), "runlog.db"))
	case "charm":
		return store.OpenCharm()
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.GetBackend())
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "runlog", "config.json")
}

// Load reads config from disk.
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
