package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/panes/internal/constraints"
	"github.com/llehouerou/panes/internal/layout"
	"github.com/llehouerou/panes/internal/smoothing"
	"github.com/llehouerou/panes/internal/state"
	"github.com/llehouerou/panes/internal/units"
)

// ErrMixedUnits is returned when a panel size is given both as a size
// string and in pixels.
var ErrMixedUnits = errors.New("size given in both percent and pixel fields")

// DefaultResizeDebounce delays layout revalidation while the terminal is
// being resized.
const DefaultResizeDebounce = 50 * time.Millisecond

type Config struct {
	AutosaveID       string  `koanf:"autosave_id"`        // empty disables persistence
	Direction        string  `koanf:"direction"`          // "horizontal" or "vertical"
	KeyboardResizeBy float64 `koanf:"keyboard_resize_by"` // percent per arrow key (default: 10)
	ResizeSmoothing  float64 `koanf:"resize_smoothing"`   // 0 disables, must be below 1
	SaveDebounceMS   int     `koanf:"save_debounce_ms"`
	ResizeDebounceMS int     `koanf:"resize_debounce_ms"`

	Storage  string `koanf:"storage"` // "sqlite" or "memory"
	DBPath   string `koanf:"db_path"`
	LogPath  string `koanf:"log_path"`
	LogLevel string `koanf:"log_level"`

	Panels []PanelConfig `koanf:"panels"`
}

// PanelConfig declares one panel. Sizes are strings accepted by
// units.ParseSize ("25", "25%", "200px"); the *_px fields are a shorthand
// for pixel sizes.
type PanelConfig struct {
	ID          string `koanf:"id"`
	Order       int    `koanf:"order"`
	Title       string `koanf:"title"`
	Collapsible bool   `koanf:"collapsible"`
	Disabled    bool   `koanf:"disabled"`
	// Conditional panels can be shown and hidden at runtime.
	Conditional bool `koanf:"conditional"`

	MinSize       string `koanf:"min_size"`
	MaxSize       string `koanf:"max_size"`
	DefaultSize   string `koanf:"default_size"`
	CollapsedSize string `koanf:"collapsed_size"`

	MinSizePx       *float64 `koanf:"min_size_px"`
	MaxSizePx       *float64 `koanf:"max_size_px"`
	DefaultSizePx   *float64 `koanf:"default_size_px"`
	CollapsedSizePx *float64 `koanf:"collapsed_size_px"`
}

func Load() (*Config, error) {
	return load(getConfigPaths())
}

func load(paths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		Storage: "sqlite",
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.LogPath = expandPath(cfg.LogPath)
	cfg.Storage = strings.ToLower(strings.TrimSpace(cfg.Storage))

	for i, p := range cfg.Panels {
		if _, err := p.Constraints(); err != nil {
			return nil, fmt.Errorf("panels[%d]: %w", i, err)
		}
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/panes/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "panes", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetDirection returns the group axis, horizontal unless configured otherwise.
func (c *Config) GetDirection() layout.Direction {
	if strings.EqualFold(c.Direction, "vertical") {
		return layout.Vertical
	}
	return layout.Horizontal
}

// GetKeyboardStep returns the arrow key resize step with defaults applied.
func (c *Config) GetKeyboardStep() float64 {
	if c.KeyboardResizeBy <= 0 || c.KeyboardResizeBy > 100 {
		return layout.DefaultKeyboardStep
	}
	return c.KeyboardResizeBy
}

// GetSmoothing returns the resize smoothing factor limited to [0, 1).
func (c *Config) GetSmoothing() float64 {
	return smoothing.Clamp(c.ResizeSmoothing)
}

// GetSaveDebounce returns the persistence write delay.
func (c *Config) GetSaveDebounce() time.Duration {
	if c.SaveDebounceMS <= 0 {
		return state.DefaultSaveDebounce
	}
	return time.Duration(c.SaveDebounceMS) * time.Millisecond
}

// GetResizeDebounce returns the delay before a terminal resize is applied.
func (c *Config) GetResizeDebounce() time.Duration {
	if c.ResizeDebounceMS <= 0 {
		return DefaultResizeDebounce
	}
	return time.Duration(c.ResizeDebounceMS) * time.Millisecond
}

// UseMemoryStorage reports whether layouts should only live for the session.
func (c *Config) UseMemoryStorage() bool {
	return c.Storage == "memory"
}

// GetLogLevel parses log_level, defaulting to info.
func (c *Config) GetLogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// GetPanels returns the declared panels, or a default three-panel layout.
func (c *Config) GetPanels() []PanelConfig {
	if len(c.Panels) > 0 {
		return c.Panels
	}
	return []PanelConfig{
		{ID: "sidebar", Order: 1, Title: "Sidebar", MinSize: "10%", DefaultSize: "25%", Collapsible: true},
		{ID: "main", Order: 2, Title: "Main", MinSize: "20%"},
		{ID: "details", Order: 3, Title: "Details", MinSize: "20px", DefaultSize: "25%", Collapsible: true, Conditional: true},
	}
}

// Constraints converts the panel's size fields.
func (p PanelConfig) Constraints() (constraints.Constraints, error) {
	c := constraints.Constraints{Collapsible: p.Collapsible}

	fields := []struct {
		name string
		text string
		px   *float64
		dst  **units.Size
	}{
		{"min_size", p.MinSize, p.MinSizePx, &c.MinSize},
		{"max_size", p.MaxSize, p.MaxSizePx, &c.MaxSize},
		{"default_size", p.DefaultSize, p.DefaultSizePx, &c.DefaultSize},
		{"collapsed_size", p.CollapsedSize, p.CollapsedSizePx, &c.CollapsedSize},
	}
	for _, f := range fields {
		switch {
		case f.text != "" && f.px != nil:
			return constraints.Constraints{}, fmt.Errorf("%s: %w", f.name, ErrMixedUnits)
		case f.text != "":
			s, err := units.ParseSize(f.text)
			if err != nil {
				return constraints.Constraints{}, fmt.Errorf("%s: %w", f.name, err)
			}
			*f.dst = constraints.Size(s)
		case f.px != nil:
			*f.dst = constraints.Size(units.Px(*f.px))
		}
	}

	return c, nil
}

// DisplayTitle returns the panel title, falling back to its id.
func (p PanelConfig) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.ID
}
