// Package config collects every tunable of the gesture control core in one
// place: defaults as named constants, environment overrides, and the optional
// gesture-binding file. Components receive these values by injection and
// never read configuration themselves.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/ayusman/gestix/internal/action"
	"github.com/ayusman/gestix/internal/gesture"
)

// Config holds all runtime settings. Every field can be overridden through
// the environment; unset values fall back to the tuned defaults.
type Config struct {
	// Camera settings.
	CameraID     int `env:"GESTIX_CAMERA_ID" envDefault:"0"`
	CameraWidth  int `env:"GESTIX_CAMERA_WIDTH" envDefault:"640"`
	CameraHeight int `env:"GESTIX_CAMERA_HEIGHT" envDefault:"360"`

	// Temporal smoothing and mailbox timing.
	VoteFrames int           `env:"GESTIX_VOTE_FRAMES" envDefault:"2"`
	Debounce   time.Duration `env:"GESTIX_DEBOUNCE" envDefault:"120ms"`
	Staleness  time.Duration `env:"GESTIX_STALENESS" envDefault:"600ms"`

	// Geometric classification thresholds.
	PinchRatio    float64 `env:"GESTIX_PINCH_RATIO" envDefault:"0.35"`
	WaveWindow    int     `env:"GESTIX_WAVE_WINDOW" envDefault:"8"`
	WaveAmplitude float64 `env:"GESTIX_WAVE_AMPLITUDE" envDefault:"0.15"`

	// Host surfaces.
	Addr         string `env:"GESTIX_ADDR" envDefault:":8080"`
	DBPath       string `env:"GESTIX_DB"`
	BindingsFile string `env:"GESTIX_BINDINGS"`
	PluginDir    string `env:"GESTIX_PLUGINS"`
}

// Load parses the environment into a Config. DBPath and PluginDir default
// to locations under ~/.gestix when unset.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.DBPath == "" || cfg.PluginDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		if cfg.DBPath == "" {
			cfg.DBPath = filepath.Join(home, ".gestix", "gestix.db")
		}
		if cfg.PluginDir == "" {
			cfg.PluginDir = filepath.Join(home, ".gestix", "plugins")
		}
	}

	return cfg, nil
}

// Thresholds returns the classifier thresholds described by the config.
func (c Config) Thresholds() gesture.Thresholds {
	return gesture.Thresholds{
		PinchRatio: c.PinchRatio,
	}
}

// bindingsFile is the YAML shape of a gesture-binding override file:
//
//	bindings:
//	  Victory: SHOOT
//	  Wave: NONE
type bindingsFile struct {
	Bindings map[string]string `yaml:"bindings"`
}

// LoadBindings reads a YAML binding file and returns the default mapping
// table with the file's overrides applied. Labels not mentioned in the file
// keep their stock action.
func LoadBindings(path string) (map[gesture.Label]action.Action, error) {
	table := action.DefaultTable()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bindings file: %w", err)
	}

	var f bindingsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse bindings file: %w", err)
	}

	for label, act := range f.Bindings {
		table[gesture.Label(label)] = action.Action(act)
	}

	return table, nil
}
