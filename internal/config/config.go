// Package config loads engine configuration from environment variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all engine configuration.
type Config struct {
	Classifier ClassifierConfig
	Logging    LogConfig
	Metrics    MetricsConfig
}

// ClassifierConfig tunes matching and guard behavior.
type ClassifierConfig struct {
	ConfidenceFloor int    `envconfig:"RECAST_CONFIDENCE_FLOOR" default:"50"`
	MaxDepth        int    `envconfig:"RECAST_MAX_DEPTH" default:"256"`
	MaxNodes        int    `envconfig:"RECAST_MAX_NODES" default:"100000"`
	PatternFile     string `envconfig:"RECAST_PATTERNS" default:""`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"RECAST_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"RECAST_LOG_DEV" default:"false"`
}

// MetricsConfig toggles Prometheus collection.
type MetricsConfig struct {
	Enabled bool `envconfig:"RECAST_METRICS_ENABLED" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from the environment or falls back to
// defaults when the environment is malformed.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return &Config{
			Classifier: ClassifierConfig{ConfidenceFloor: 50, MaxDepth: 256, MaxNodes: 100000},
			Logging:    LogConfig{Level: "info"},
		}
	}
	return cfg
}
