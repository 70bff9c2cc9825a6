// Package config holds run configuration loaded from YAML and CLI flags.
package config

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"cubewalk/pkg/game/wrap"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all run settings.
type Config struct {
	// Edge length of one cube face in cells. Never inferred from the board.
	CubeSize int `yaml:"cube_size"`

	// Input file path
	Input string `yaml:"input"`

	// Strategies to run, in output order (flat, cube)
	Strategies []string `yaml:"strategies"`

	// Trace draws the walked path after each run
	Trace bool `yaml:"trace"`

	// Dump writes a plain-text debug report to this path when set
	Dump string `yaml:"dump"`

	LogLevel string `yaml:"log_level"`
	Color    string `yaml:"color"` // auto, always, never
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		CubeSize:   50,
		Strategies: []string{wrap.Flat.String(), wrap.Cube.String()},
		LogLevel:   "info",
		Color:      ColorAuto,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and reports the first problem.
func (c *Config) Validate() error {
	if c.CubeSize <= 0 {
		return fmt.Errorf("cube_size must be positive, got %d: %w", c.CubeSize, ErrInvalidConfig)
	}
	if c.Input == "" {
		return fmt.Errorf("input path is required: %w", ErrInvalidConfig)
	}
	if len(c.Strategies) == 0 {
		return fmt.Errorf("at least one strategy is required: %w", ErrInvalidConfig)
	}
	if _, err := c.ParsedStrategies(); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %v: %w", err, ErrInvalidConfig)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color %q: %w", c.Color, ErrInvalidConfig)
	}
	return nil
}

// ParsedStrategies converts the configured names into strategies.
func (c *Config) ParsedStrategies() ([]wrap.Strategy, error) {
	out := make([]wrap.Strategy, 0, len(c.Strategies))
	for _, name := range c.Strategies {
		s, err := wrap.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
