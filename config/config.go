// Package config manages pattrix configuration: a TOML file under
// ~/.pattrix, environment overrides, and validated defaults.
package config

import (
	"github.com/teranos/pattrix/errors"
	"github.com/teranos/pattrix/pipeline"
)

// Config represents the pattrix configuration
type Config struct {
	Detection DetectionConfig `mapstructure:"detection" toml:"detection"`
	Database  DatabaseConfig  `mapstructure:"database" toml:"database"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging"`
}

// DetectionConfig configures one detection run's thresholds.
// Separator joins attribute type and value (default "=="); MinEdgeWeight and
// MissingEdgeProp live in [0, 1]; Seed makes edge thinning reproducible;
// CloseRadius parameterizes the default close-node policy.
type DetectionConfig struct {
	Separator        string  `mapstructure:"separator" toml:"separator"`
	MinEdgeWeight    float64 `mapstructure:"min_edge_weight" toml:"min_edge_weight"`
	MissingEdgeProp  float64 `mapstructure:"missing_edge_prop" toml:"missing_edge_prop"`
	MinPatternCount  int     `mapstructure:"min_pattern_count" toml:"min_pattern_count"`
	MaxPatternLength int     `mapstructure:"max_pattern_length" toml:"max_pattern_length"`
	Seed             int64   `mapstructure:"seed" toml:"seed"`
	CloseRadius      float64 `mapstructure:"close_radius" toml:"close_radius"`
}

// DatabaseConfig configures the SQLite record store
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

// LoggingConfig configures log output
type LoggingConfig struct {
	JSON bool `mapstructure:"json" toml:"json"`
}

// Params converts the detection section into run parameters.
func (c *Config) Params() pipeline.Params {
	return pipeline.Params{
		Separator:        c.Detection.Separator,
		MinEdgeWeight:    c.Detection.MinEdgeWeight,
		MissingEdgeProp:  c.Detection.MissingEdgeProp,
		MinPatternCount:  c.Detection.MinPatternCount,
		MaxPatternLength: c.Detection.MaxPatternLength,
		Seed:             c.Detection.Seed,
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.Detection.CloseRadius < 0 {
		return errors.NewConfigurationError("detection.close_radius must be >= 0, got %g", c.Detection.CloseRadius)
	}
	return nil
}
