// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package config

import (
	"fmt"
)

// Config is the full runtime configuration.
type Config struct {
	// Logging configures the global logger.
	Logging LoggingConfig `koanf:"logging" json:"logging"`

	// Pipeline configures batch scoring.
	Pipeline PipelineConfig `koanf:"pipeline" json:"pipeline"`

	// Weights optionally overrides the insight factor weights. Zero entries
	// keep their defaults; the scorer renormalizes whatever is supplied.
	Weights WeightsConfig `koanf:"weights" json:"weights"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	// Level is the minimum log level. Default: info.
	Level string `koanf:"level" json:"level"`

	// Format is json or console. Default: json.
	Format string `koanf:"format" json:"format"`
}

// PipelineConfig configures batch scoring.
type PipelineConfig struct {
	// Workers is the number of concurrent event-scoring workers. Default: 4.
	Workers int `koanf:"workers" json:"workers"`

	// ConfidenceLevel is the significance-test confidence level. Supported
	// values are 0.90, 0.95 and 0.99. Default: 0.95.
	ConfidenceLevel float64 `koanf:"confidence_level" json:"confidence_level"`

	// MinOpportunityScore is the overall opportunity score an event must
	// reach before a recommendation is generated for it. Default: 0.4.
	MinOpportunityScore float64 `koanf:"min_opportunity_score" json:"min_opportunity_score"`

	// MaxRecommendations caps the ranked recommendation list. Default: 50.
	MaxRecommendations int `koanf:"max_recommendations" json:"max_recommendations"`
}

// WeightsConfig mirrors the insight factor weights for file/env override.
type WeightsConfig struct {
	Relevance  float64 `koanf:"relevance" json:"relevance"`
	Impact     float64 `koanf:"impact" json:"impact"`
	Urgency    float64 `koanf:"urgency" json:"urgency"`
	Confidence float64 `koanf:"confidence" json:"confidence"`
}

// supportedConfidenceLevels are the levels the significance engine has
// critical values for.
var supportedConfidenceLevels = map[float64]bool{0.90: true, 0.95: true, 0.99: true}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Pipeline.Workers < 1 {
		return fmt.Errorf("pipeline.workers must be at least 1, got %d", c.Pipeline.Workers)
	}
	if !supportedConfidenceLevels[c.Pipeline.ConfidenceLevel] {
		return fmt.Errorf("pipeline.confidence_level must be 0.90, 0.95 or 0.99, got %v", c.Pipeline.ConfidenceLevel)
	}
	if c.Pipeline.MinOpportunityScore < 0 || c.Pipeline.MinOpportunityScore > 1 {
		return fmt.Errorf("pipeline.min_opportunity_score must be in [0,1], got %v", c.Pipeline.MinOpportunityScore)
	}
	if c.Pipeline.MaxRecommendations < 1 {
		return fmt.Errorf("pipeline.max_recommendations must be at least 1, got %d", c.Pipeline.MaxRecommendations)
	}
	if c.Weights.Relevance < 0 || c.Weights.Impact < 0 || c.Weights.Urgency < 0 || c.Weights.Confidence < 0 {
		return fmt.Errorf("weights must not be negative")
	}
	return nil
}
