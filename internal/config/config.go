// Package config handles the user configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tangleview/tangle/pkg/forcesim"
)

// Config represents configuration stored in ~/.config/tangle/config.yml.
// Zero values mean "use the built-in default", so a missing file and an
// empty file behave identically.
type Config struct {
	Source  SourceConfig  `yaml:"source,omitempty"`
	Physics PhysicsConfig `yaml:"physics,omitempty"`
	Render  RenderConfig  `yaml:"render,omitempty"`
}

// SourceConfig selects where graph snapshots come from when no flag or
// argument overrides it.
type SourceConfig struct {
	Snapshot string `yaml:"snapshot,omitempty"` // path to a JSON snapshot
	Database string `yaml:"database,omitempty"` // path to a SQLite knowledge base
}

// PhysicsConfig overrides individual layout constants. Only positive
// values take effect.
type PhysicsConfig struct {
	Repulsion  float64 `yaml:"repulsion,omitempty"`
	Spring     float64 `yaml:"spring,omitempty"`
	RestLength float64 `yaml:"rest_length,omitempty"`
	Gravity    float64 `yaml:"gravity,omitempty"`
	Damping    float64 `yaml:"damping,omitempty"`
	CoolTicks  int     `yaml:"cool_ticks,omitempty"`
}

// RenderConfig overrides presentation knobs.
type RenderConfig struct {
	FPS         int `yaml:"fps,omitempty"`          // frames per second, 1..120
	LabelBudget int `yaml:"label_budget,omitempty"` // node label length in cells
}

const (
	// Dir is the directory name under XDG_CONFIG_HOME.
	Dir = "tangle"
	// File is the config file name.
	File = "config.yml"

	defaultFPS         = 30
	defaultLabelBudget = 14
)

// cache holds the loaded default-path config.
var cache *Config

// Path returns the path to the config file. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/tangle/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, Dir, File)
}

// Load reads the config from the default path. Returns an empty config
// (not an error) if the file doesn't exist. Environment variables
// TANGLE_SNAPSHOT and TANGLE_DATABASE override the source section,
// which lets a .env file point a checkout at its local data.
func Load() (*Config, error) {
	if cache != nil {
		return cache, nil
	}

	cfg := &Config{}
	path := Path()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	applyEnv(cfg)

	cache = cfg
	return cfg, nil
}

// LoadFile reads the config from an explicit path. Unlike Load, a
// missing file is an error here since the user asked for it by name.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("TANGLE_SNAPSHOT"); v != "" {
		cfg.Source.Snapshot = v
	}
	if v := os.Getenv("TANGLE_DATABASE"); v != "" {
		cfg.Source.Database = v
	}
}

// ResetCache clears the cached config. Useful for testing.
func ResetCache() {
	cache = nil
}

// SimConfig maps the physics overrides onto the layout defaults.
func (c *Config) SimConfig() forcesim.Config {
	sim := forcesim.DefaultConfig()
	if c.Physics.Repulsion > 0 {
		sim.Repulsion = c.Physics.Repulsion
	}
	if c.Physics.Spring > 0 {
		sim.Spring = c.Physics.Spring
	}
	if c.Physics.RestLength > 0 {
		sim.RestLength = c.Physics.RestLength
	}
	if c.Physics.Gravity > 0 {
		sim.Gravity = c.Physics.Gravity
	}
	if c.Physics.Damping > 0 {
		sim.Damping = c.Physics.Damping
	}
	if c.Physics.CoolTicks > 0 {
		sim.CoolTicks = c.Physics.CoolTicks
	}
	return sim
}

// FrameRate returns the configured frames per second, bounded to 1..120.
func (c *Config) FrameRate() int {
	fps := c.Render.FPS
	if fps <= 0 {
		return defaultFPS
	}
	if fps > 120 {
		return 120
	}
	return fps
}

// LabelBudget returns the node label length in cells.
func (c *Config) LabelBudget() int {
	if c.Render.LabelBudget <= 0 {
		return defaultLabelBudget
	}
	return c.Render.LabelBudget
}
