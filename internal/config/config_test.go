// ABOUTME: Tests for configuration loading and path handling.
// ABOUTME: Validates backend defaults, ~ expansion, and XDG paths.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "badger" {
		t.Errorf("GetBackend = %s, want badger", got)
	}

	cfg.Backend = "charm"
	if got := cfg.GetBackend(); got != "charm" {
		t.Errorf("GetBackend = %s, want charm", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ExpandPath(tt.in); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGetConfigPathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
	want := filepath.Join("/tmp/xdg-config", "runlog", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath = %s, want %s", got, want)
	}
}

func TestLoadMissingConfigReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GetBackend() != "badger" {
		t.Errorf("GetBackend = %s, want badger default", cfg.GetBackend())
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{Backend: "sqlite", DataDir: "~/runlog-data"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Backend != "sqlite" || loaded.DataDir != "~/runlog-data" {
		t.Errorf("loaded = %+v, want saved values", loaded)
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "postgres"}
	if _, err := cfg.OpenStore(); err == nil {
		t.Error("expected error for unknown backend")
	}
}
