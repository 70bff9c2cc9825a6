package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"

	"cubewalk/pkg/game/wrap"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.Input = "input.txt"
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.CubeSize != 50 {
		t.Errorf("CubeSize = %d, want 50", cfg.CubeSize)
	}
	got, err := cfg.ParsedStrategies()
	if err != nil {
		t.Fatalf("ParsedStrategies: %v", err)
	}
	if len(got) != 2 || got[0] != wrap.Flat || got[1] != wrap.Cube {
		t.Errorf("ParsedStrategies() = %v, want [flat cube]", got)
	}
	if err := validConfig().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubewalk.yaml")
	data := []byte("cube_size: 4\ninput: sample.txt\nstrategies: [cube]\ntrace: true\nlog_level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CubeSize != 4 || cfg.Input != "sample.txt" || !cfg.Trace {
		t.Errorf("Load() = %+v", cfg)
	}
	if len(cfg.Strategies) != 1 || cfg.Strategies[0] != "cube" {
		t.Errorf("Strategies = %v, want [cube]", cfg.Strategies)
	}
	if cfg.Color != ColorAuto {
		t.Errorf("Color = %q, want default %q", cfg.Color, ColorAuto)
	}
	if cfg.Level() != log.DebugLevel {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load(missing) err = nil, want error")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("cube_size: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load(bad yaml) err = nil, want error")
	}
}

func TestValidate(t *testing.T) {
	tests := map[string]func(*Config){
		"zero cube size":   func(c *Config) { c.CubeSize = 0 },
		"no input":         func(c *Config) { c.Input = "" },
		"no strategies":    func(c *Config) { c.Strategies = nil },
		"unknown strategy": func(c *Config) { c.Strategies = []string{"sphere"} },
		"bad log level":    func(c *Config) { c.LogLevel = "loud" },
		"bad color":        func(c *Config) { c.Color = "sometimes" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
