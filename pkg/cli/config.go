// Package cli provides CLI-specific logic including configuration loading.
package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dayooguns/tompri/pkg/engine"
	"github.com/dayooguns/tompri/pkg/interfaces"
)

// Config represents the .tompri.yml configuration file.
type Config struct {
	Version string             `yaml:"version"`
	Weights interfaces.Weights `yaml:"weights"`
	Tiers   TierConfig         `yaml:"tiers"`
	Output  OutputConfig       `yaml:"output"`
	Serve   ServeConfig        `yaml:"serve"`
}

// TierConfig holds the adjusted-score tier boundaries.
type TierConfig struct {
	Priority1 float64 `yaml:"priority1"`
	Priority2 float64 `yaml:"priority2"`
	Priority3 float64 `yaml:"priority3"`
}

// Thresholds converts the config into engine tier thresholds.
func (t TierConfig) Thresholds() engine.TierThresholds {
	return engine.TierThresholds{
		Priority1: t.Priority1,
		Priority2: t.Priority2,
		Priority3: t.Priority3,
	}
}

// OutputConfig controls ranking output settings.
type OutputConfig struct {
	Format  string `yaml:"format"`
	Verbose bool   `yaml:"verbose"`
}

// ServeConfig controls the HTTP API server.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// LoadConfig reads and parses a .tompri.yml configuration file.
// If path is empty, it looks for .tompri.yml in the current directory.
// If the default config file is not found, sensible defaults are returned.
// If an explicitly specified config file is not found, an error is returned.
func LoadConfig(path string) (*Config, error) {
	useDefault := path == ""
	if useDefault {
		path = ".tompri.yml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && useDefault {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("cli: reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cli: parsing config %s: %w", path, err)
	}

	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("cli: config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultConfig returns a Config with the documented .tompri.yml defaults.
func DefaultConfig() *Config {
	cfg := &Config{Version: "1"}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in zero-value fields with sensible defaults.
func applyDefaults(cfg *Config) {
	if cfg.Weights.Total() == 0 {
		cfg.Weights = engine.DefaultWeights()
	}
	if cfg.Tiers.Priority1 == 0 {
		cfg.Tiers.Priority1 = engine.DefaultPriority1Threshold
	}
	if cfg.Tiers.Priority2 == 0 {
		cfg.Tiers.Priority2 = engine.DefaultPriority2Threshold
	}
	if cfg.Tiers.Priority3 == 0 {
		cfg.Tiers.Priority3 = engine.DefaultPriority3Threshold
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "terminal"
	}
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = ":8080"
	}
}

// validate rejects weight configurations the engine can never produce.
func validate(cfg *Config) error {
	return engine.ValidateWeights(cfg.Weights)
}
