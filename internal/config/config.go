// ABOUTME: Coach configuration with storage backend selection.
// ABOUTME: Handles settings, default user, and the store factory function.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/coach/internal/store"
)

// Defaults for freshly initialized installs. The user id keeps the demo
// account convention from the original sensor fleet.
const (
	DefaultUserID   = "U123"
	DefaultUserName = "Demo User"
)

// Config stores coach tool configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default), "badger",
	// or "charm" (synced via Charm Cloud).
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for local data storage. SQLite puts
	// coach.db here; badger puts its value log here. Supports ~ expansion.
	// Defaults to ~/.local/share/coach.
	DataDir string `json:"data_dir,omitempty"`

	// UserID and UserName identify the default account commands act on.
	UserID   string `json:"user_id,omitempty"`
	UserName string `json:"user_name,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
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

// GetUserID returns the account commands act on.
func (c *Config) GetUserID() string {
	if c.UserID == "" {
		return DefaultUserID
	}
	return c.UserID
}

// GetUserName returns the display name for the default account.
func (c *Config) GetUserName() string {
	if c.UserName == "" {
		return DefaultUserName
	}
	return c.UserName
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "coach")
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

// OpenStore creates a document store based on the configured backend.
func (c *Config) OpenStore() (store.Store, error) {
	return c.OpenBackend(c.GetBackend())
}

// OpenBackend creates a document store for the named backend. Local
// backends live under the configured data directory.
func (c *Config) OpenBackend(backend string) (store.Store, error) {
	dataDir := c.GetDataDir()

	switch backend {
	case "sqlite":
		return store.OpenSQLite(filepath.Join(dataDir, "coach.db"))
	case "badger":
		return store.OpenBadger(filepath.Join(dataDir, "badger"))
	case "charm":
		return store.OpenCharm()
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "coach", "config.json")
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
