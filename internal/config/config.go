// Package config loads output settings for the calc command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color modes for error output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings for printing results.
type Config struct {
	// Format is a fmt verb for float results, e.g. "%.3f". Empty means the
	// shortest exact decimal form.
	Format string `yaml:"format"`
	// Echo prints the parenthesized form of each expression before its
	// result.
	Echo bool `yaml:"echo"`
	// Color is one of ColorAuto, ColorAlways, or ColorNever.
	Color string `yaml:"color"`
}

// Default returns the settings used when there is no config file.
func Default() Config {
	return Config{Color: ColorAuto}
}

// Load reads settings from a YAML file. Settings missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// Only used to make messages easier to follow.
		absPath = path
	}
	b, err := os.ReadFile(absPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", absPath, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", absPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", absPath, err)
	}
	return cfg, nil
}

// Validate checks that every setting has a usable value.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q, want %s, %s, or %s", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	if c.Format != "" {
		if s := fmt.Sprintf(c.Format, 1.5); strings.Contains(s, "%!") {
			return fmt.Errorf("format %q doesn't format one float: %s", c.Format, s)
		}
	}
	return nil
}
