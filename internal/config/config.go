// Package config loads and saves the small JSON-backed settings this core
// needs: window geometry, a ROM directory, and a couple of debug toggles.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds every user-facing setting for cmd/gones.
type Config struct {
	Window WindowConfig `json:"window"`
	Debug  DebugConfig  `json:"debug"`
	Paths  PathsConfig  `json:"paths"`

	path string
}

// WindowConfig describes the presentation window.
type WindowConfig struct {
	Width      int  `json:"width"`
	Height     int  `json:"height"`
	Scale      int  `json:"scale"`
	Fullscreen bool `json:"fullscreen"`
}

// DebugConfig toggles diagnostic behavior.
type DebugConfig struct {
	ShowFPS    bool `json:"show_fps"`
	CPUTracing bool `json:"cpu_tracing"`
}

// PathsConfig names the directory ROMs live in.
type PathsConfig struct {
	ROMs string `json:"roms"`
}

// Default returns the settings a fresh install starts with.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 512, Height: 480, Scale: 2},
		Debug:  DebugConfig{},
		Paths:  PathsConfig{ROMs: "./roms"},
	}
}

// Load reads a JSON config from path. If the file does not exist, it writes
// the default config to path and returns it, matching the teacher's
// load-or-create behavior.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cfg.Save(); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.path = path
	if cfg.Window.Scale <= 0 {
		cfg.Window.Scale = 1
	}
	return cfg, nil
}

// Save writes the config back to the path it was loaded from (or created
// with).
func (c *Config) Save() error {
	if c.path == "" {
		return fmt.Errorf("config: no path set")
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: create dir %s: %w", dir, err)
		}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", c.path, err)
	}
	return nil
}
