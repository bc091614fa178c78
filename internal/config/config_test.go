// ABOUTME: Tests for coach configuration management.
// ABOUTME: Covers load, save, defaults, backend selection, and path expansion.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want %q", got, "sqlite")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "badger"}
	if got := cfg.GetBackend(); got != "badger" {
		t.Errorf("GetBackend() = %q, want %q", got, "badger")
	}
}

func TestGetUserDefaults(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetUserID(); got != DefaultUserID {
		t.Errorf("GetUserID() = %q, want %q", got, DefaultUserID)
	}
	if got := cfg.GetUserName(); got != DefaultUserName {
		t.Errorf("GetUserName() = %q, want %q", got, DefaultUserName)
	}

	cfg = &Config{UserID: "U777", UserName: "Alex"}
	if got := cfg.GetUserID(); got != "U777" {
		t.Errorf("GetUserID() = %q, want %q", got, "U777")
	}
	if got := cfg.GetUserName(); got != "Alex" {
		t.Errorf("GetUserName() = %q, want %q", got, "Alex")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetDataDir(); got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/coach-test"}
	if got := cfg.GetDataDir(); got != "/tmp/coach-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/coach-test")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/data/coach", filepath.Join(home, "data/coach")},
		{"data/coach", "data/coach"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLoadMissingConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file: %v", err)
	}
	if cfg.Backend != "" {
		t.Errorf("Backend = %q, want empty on fresh install", cfg.Backend)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Backend: "badger", UserID: "U777"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Backend != "badger" || loaded.UserID != "U777" {
		t.Errorf("loaded = %+v, want saved values back", loaded)
	}
}

func TestOpenBackendUnknown(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}
	if _, err := cfg.OpenBackend("mongo"); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestOpenStoreSQLite(t *testing.T) {
	cfg := &Config{DataDir: t.TempDir()}

	st, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() failed: %v", err)
	}
	defer st.Close()

	if _, err := os.Stat(filepath.Join(cfg.GetDataDir(), "coach.db")); err != nil {
		t.Errorf("expected coach.db to exist: %v", err)
	}
}
