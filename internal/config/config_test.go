//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/llehouerou/panes/internal/layout"
	"github.com/llehouerou/panes/internal/units"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/panes.db",
			expected: filepath.Join(home, "panes.db"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/.local/state/panes/panes.log",
			expected: filepath.Join(home, ".local", "state", "panes", "panes.log"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/lib/panes.db",
			expected: "/var/lib/panes.db",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Fatal("getConfigPaths() returned empty slice")
	}

	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}

	if home, err := os.UserHomeDir(); err == nil {
		expectedFirst := filepath.Join(home, ".config", "panes", "config.toml")
		if paths[0] != expectedFirst {
			t.Errorf("first config path = %q, want %q", paths[0], expectedFirst)
		}
	}
}

func TestLoad_LayeredFiles(t *testing.T) {
	dir := t.TempDir()
	global := writeConfig(t, dir, "global.toml", `
autosave_id = "global"
direction = "vertical"
keyboard_resize_by = 5
storage = "Memory"

[[panels]]
id = "left"
min_size = "10%"
`)
	local := writeConfig(t, dir, "local.toml", `
autosave_id = "local"

[[panels]]
id = "tree"
order = 1
title = "Files"
min_size_px = 120
default_size = "30%"
collapsible = true

[[panels]]
id = "editor"
order = 2
`)

	cfg, err := load([]string{global, filepath.Join(dir, "missing.toml"), local})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.AutosaveID != "local" {
		t.Errorf("AutosaveID = %q, want %q", cfg.AutosaveID, "local")
	}
	if cfg.GetDirection() != layout.Vertical {
		t.Errorf("GetDirection() = %v, want vertical", cfg.GetDirection())
	}
	if cfg.GetKeyboardStep() != 5 {
		t.Errorf("GetKeyboardStep() = %v, want 5", cfg.GetKeyboardStep())
	}
	if !cfg.UseMemoryStorage() {
		t.Error("UseMemoryStorage() = false, want true")
	}

	panels := cfg.GetPanels()
	if len(panels) != 2 {
		t.Fatalf("len(panels) = %d, want 2", len(panels))
	}
	c, err := panels[0].Constraints()
	if err != nil {
		t.Fatalf("Constraints failed: %v", err)
	}
	if c.MinSize == nil || *c.MinSize != units.Px(120) {
		t.Errorf("MinSize = %v, want 120px", c.MinSize)
	}
	if c.DefaultSize == nil || *c.DefaultSize != units.Pct(30) {
		t.Errorf("DefaultSize = %v, want 30%%", c.DefaultSize)
	}
	if !c.Collapsible {
		t.Error("Collapsible = false, want true")
	}
	if panels[0].DisplayTitle() != "Files" || panels[1].DisplayTitle() != "editor" {
		t.Errorf("titles = %q, %q", panels[0].DisplayTitle(), panels[1].DisplayTitle())
	}
}

func TestLoad_MixedUnits(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", `
[[panels]]
id = "left"
min_size = "10%"
min_size_px = 100
`)

	_, err := load([]string{path})
	if !errors.Is(err, ErrMixedUnits) {
		t.Errorf("load error = %v, want ErrMixedUnits", err)
	}
}

func TestLoad_InvalidSize(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.toml", `
[[panels]]
id = "left"
max_size = "wide"
`)

	if _, err := load([]string{path}); err == nil {
		t.Error("expected an error for an unparsable size")
	}
}

func TestLoad_NoFiles(t *testing.T) {
	cfg, err := load([]string{filepath.Join(t.TempDir(), "none.toml")})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.UseMemoryStorage() {
		t.Error("default storage should be sqlite")
	}
	if len(cfg.GetPanels()) != 3 {
		t.Errorf("default panels = %d, want 3", len(cfg.GetPanels()))
	}
	for _, p := range cfg.GetPanels() {
		if _, err := p.Constraints(); err != nil {
			t.Errorf("default panel %q: %v", p.ID, err)
		}
	}
}

func TestGetters_Defaults(t *testing.T) {
	cfg := Config{}

	if cfg.GetDirection() != layout.Horizontal {
		t.Errorf("GetDirection() = %v, want horizontal", cfg.GetDirection())
	}
	if cfg.GetKeyboardStep() != layout.DefaultKeyboardStep {
		t.Errorf("GetKeyboardStep() = %v, want %v", cfg.GetKeyboardStep(), layout.DefaultKeyboardStep)
	}
	if cfg.GetSmoothing() != 0 {
		t.Errorf("GetSmoothing() = %v, want 0", cfg.GetSmoothing())
	}
	if cfg.GetSaveDebounce() != 100*time.Millisecond {
		t.Errorf("GetSaveDebounce() = %v, want 100ms", cfg.GetSaveDebounce())
	}
	if cfg.GetResizeDebounce() != DefaultResizeDebounce {
		t.Errorf("GetResizeDebounce() = %v, want %v", cfg.GetResizeDebounce(), DefaultResizeDebounce)
	}
	if cfg.GetLogLevel() != slog.LevelInfo {
		t.Errorf("GetLogLevel() = %v, want info", cfg.GetLogLevel())
	}
}

func TestGetters_CustomValues(t *testing.T) {
	cfg := Config{
		KeyboardResizeBy: 2.5,
		ResizeSmoothing:  1.5,
		SaveDebounceMS:   250,
		ResizeDebounceMS: 10,
		LogLevel:         "debug",
	}

	if cfg.GetKeyboardStep() != 2.5 {
		t.Errorf("GetKeyboardStep() = %v, want 2.5", cfg.GetKeyboardStep())
	}
	if s := cfg.GetSmoothing(); s >= 1 {
		t.Errorf("GetSmoothing() = %v, want below 1", s)
	}
	if cfg.GetSaveDebounce() != 250*time.Millisecond {
		t.Errorf("GetSaveDebounce() = %v, want 250ms", cfg.GetSaveDebounce())
	}
	if cfg.GetResizeDebounce() != 10*time.Millisecond {
		t.Errorf("GetResizeDebounce() = %v, want 10ms", cfg.GetResizeDebounce())
	}
	if cfg.GetLogLevel() != slog.LevelDebug {
		t.Errorf("GetLogLevel() = %v, want debug", cfg.GetLogLevel())
	}
}
