// Package config holds the tunable parameters of the router.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"wireroute/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// BusConfig controls detection and acceptance of bus-aware routes.
type BusConfig struct {
	// MinLength is the shortest wire considered a bus.
	MinLength int64 `yaml:"min_length_nm"`
	// AxisTolerance is how far a wire may stray from an axis and still count as aligned.
	AxisTolerance int64 `yaml:"axis_tolerance_nm"`
	// AcceptImprovement accepts a bus path on its own when it beats the direct path by more than this fraction.
	AcceptImprovement float64 `yaml:"accept_improvement"`
	// StrictImprovement accepts a bus path above this fraction if it is also strictly shorter.
	StrictImprovement float64 `yaml:"strict_improvement"`
}

// EvaluationConfig weighs the terms used to rank routing options.
type EvaluationConfig struct {
	CollisionPenalty float64 `yaml:"collision_penalty"`
	QualityWeight    float64 `yaml:"quality_weight"`
}

// Config is the complete router configuration.
type Config struct {
	Clearance  int64            `yaml:"clearance_nm"`
	GridSize   int64            `yaml:"grid_nm"`
	SnapRange  int64            `yaml:"snap_range_nm"`
	Bus        BusConfig        `yaml:"bus"`
	Evaluation EvaluationConfig `yaml:"evaluation"`
}

// Default returns the configuration used when nothing else is supplied.
func Default() Config {
	return Config{
		Clearance: core.DefaultClearance,
		GridSize:  core.GridSize,
		SnapRange: 635_000,
		Bus: BusConfig{
			MinLength:         5 * core.Millimeter,
			AxisTolerance:     100_000,
			AcceptImprovement: 0.10,
			StrictImprovement: 0.05,
		},
		Evaluation: EvaluationConfig{
			CollisionPenalty: 1_000_000,
			QualityWeight:    1_000,
		},
	}
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads a YAML config file. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Validate checks the configuration for values the router cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Clearance <= 0:
		return fmt.Errorf("%w: clearance must be positive, got %d", ErrInvalidConfig, c.Clearance)
	case c.GridSize <= 0:
		return fmt.Errorf("%w: grid must be positive, got %d", ErrInvalidConfig, c.GridSize)
	case c.SnapRange < 0:
		return fmt.Errorf("%w: snap range must not be negative", ErrInvalidConfig)
	case c.Bus.MinLength < 0 || c.Bus.AxisTolerance < 0:
		return fmt.Errorf("%w: bus lengths must not be negative", ErrInvalidConfig)
	case c.Bus.AcceptImprovement < 0 || c.Bus.AcceptImprovement >= 1:
		return fmt.Errorf("%w: accept_improvement must be in [0,1), got %g", ErrInvalidConfig, c.Bus.AcceptImprovement)
	case c.Bus.StrictImprovement < 0 || c.Bus.StrictImprovement > c.Bus.AcceptImprovement:
		return fmt.Errorf("%w: strict_improvement must be in [0,accept_improvement], got %g", ErrInvalidConfig, c.Bus.StrictImprovement)
	case c.Evaluation.CollisionPenalty < 0 || c.Evaluation.QualityWeight < 0:
		return fmt.Errorf("%w: evaluation weights must not be negative", ErrInvalidConfig)
	}
	return nil
}
