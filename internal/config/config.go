package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todokit/internal/ui"
)

// Config holds presentation settings. Nothing here changes store behavior.
type Config struct {
	Theme       string       `yaml:"theme"`
	Color       ui.ColorMode `yaml:"color"`
	Title       string       `yaml:"title"`
	AddColor    string       `yaml:"add_color"`
	DeleteColor string       `yaml:"delete_color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Theme:       "classic",
		Color:       ui.ColorAuto,
		Title:       "Todos",
		AddColor:    ui.DefaultButtonColor,
		DeleteColor: "#607d8b",
	}
}

// Load reads a YAML file on top of Default. A missing file is not an error
// when the path is the implicit default.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the UI cannot honor.
func (c Config) Validate() error {
	switch c.Color {
	case ui.ColorAuto, ui.ColorAlways, ui.ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	switch strings.ToLower(c.Theme) {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	return nil
}
