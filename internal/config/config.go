package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
)

// SymbolsConfig holds the marker glyphs appended to the branch segment.
type SymbolsConfig struct {
	Dirty  string `toml:"dirty"`
	Behind string `toml:"behind"`
	Ahead  string `toml:"ahead"`
}

// ThemeConfig selects a color preset and optional per-color overrides.
// Colors are lipgloss color strings (ANSI number or hex).
type ThemeConfig struct {
	Name     string `toml:"name"`
	Mode     string `toml:"mode"`
	Path     string `toml:"path"`
	Branch   string `toml:"branch"`
	Arrows   string `toml:"arrows"`
	Identity string `toml:"identity"`
	Root     string `toml:"root"`
}

// Config holds the precmd configuration.
type Config struct {
	Shorten bool          `toml:"shorten"`
	Color   string        `toml:"color"`
	Symbols SymbolsConfig `toml:"symbols"`
	Theme   ThemeConfig   `toml:"theme"`
}

// Valid values for the enumerated settings.
var (
	ValidColorModes = []string{"auto", "always", "never"}
	ValidThemeNames = []string{"default", "dracula", "nord", "gruvbox", "none"}
	ValidThemeModes = []string{"auto", "light", "dark"}
)

// Default returns the default configuration.
func Default() Config {
	return Config{
		Shorten: false,
		Color:   "auto",
		Symbols: SymbolsConfig{
			Dirty:  "*",
			Behind: "⭭",
			Ahead:  "⭫",
		},
		Theme: ThemeConfig{
			Name: "default",
			Mode: "auto",
		},
	}
}

// Path returns the config file location, ~/.config/precmd/config.toml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "precmd", "config.toml"), nil
}

// Load reads the config file.
// Returns Default() if the file doesn't exist (no error).
// Returns an error only if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path; see Load.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if !slices.Contains(ValidColorModes, c.Color) {
		return fmt.Errorf("invalid color %q: must be one of %v", c.Color, ValidColorModes)
	}
	if c.Theme.Name != "" && !slices.Contains(ValidThemeNames, c.Theme.Name) {
		return fmt.Errorf("invalid theme.name %q: must be one of %v", c.Theme.Name, ValidThemeNames)
	}
	if c.Theme.Mode != "" && !slices.Contains(ValidThemeModes, c.Theme.Mode) {
		return fmt.Errorf("invalid theme.mode %q: must be one of %v", c.Theme.Mode, ValidThemeModes)
	}
	if c.Symbols.Dirty == "" || c.Symbols.Behind == "" || c.Symbols.Ahead == "" {
		return fmt.Errorf("symbols must not be empty")
	}
	return nil
}
