// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists where the config file is searched, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/eventscout/config.yaml",
	"/etc/eventscout/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "EVENTSCOUT_CONFIG"

// envPrefix is stripped from environment variables before mapping them onto
// config keys: EVENTSCOUT_PIPELINE_WORKERS=8 sets pipeline.workers.
const envPrefix = "EVENTSCOUT_"

// defaultConfig returns every default value. File and env settings override
// these.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Pipeline: PipelineConfig{
			Workers:             4,
			ConfidenceLevel:     0.95,
			MinOpportunityScore: 0.4,
			MaxRecommendations:  50,
		},
		// Weights default to zero here; the insight scorer fills in its own
		// defaults for unset factors and renormalizes.
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// EVENTSCOUT_-prefixed environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// findConfigFile returns the first config file that exists, honoring the
// env override. Empty means "defaults only", which is fine.
func findConfigFile() string {
	if path := os.Getenv(ConfigPathEnvVar); path != "" {
		return path
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envMappings maps recognized environment variables (minus the prefix,
// lowercased) onto config keys. Unrecognized variables are ignored so that
// unrelated EVENTSCOUT_-prefixed variables can't corrupt the config tree.
var envMappings = map[string]string{
	"log_level":  "logging.level",
	"log_format": "logging.format",

	"workers":               "pipeline.workers",
	"confidence_level":      "pipeline.confidence_level",
	"min_opportunity_score": "pipeline.min_opportunity_score",
	"max_recommendations":   "pipeline.max_recommendations",

	"weight_relevance":  "weights.relevance",
	"weight_impact":     "weights.impact",
	"weight_urgency":    "weights.urgency",
	"weight_confidence": "weights.confidence",
}

// envTransformFunc resolves an environment variable to its config key, or ""
// to skip it. For example EVENTSCOUT_WORKERS=8 sets pipeline.workers.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
	return envMappings[key]
}
