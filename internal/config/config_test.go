// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Pipeline.Workers != 4 {
		t.Errorf("Workers = %d, want default 4", cfg.Pipeline.Workers)
	}
	if cfg.Pipeline.ConfidenceLevel != 0.95 {
		t.Errorf("ConfidenceLevel = %v, want default 0.95", cfg.Pipeline.ConfidenceLevel)
	}
	if cfg.Pipeline.MaxRecommendations != 50 {
		t.Errorf("MaxRecommendations = %d, want default 50", cfg.Pipeline.MaxRecommendations)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json defaults", cfg.Logging)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("EVENTSCOUT_WORKERS", "8")
	t.Setenv("EVENTSCOUT_CONFIDENCE_LEVEL", "0.99")
	t.Setenv("EVENTSCOUT_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Pipeline.Workers != 8 {
		t.Errorf("Workers = %d, want env override 8", cfg.Pipeline.Workers)
	}
	if cfg.Pipeline.ConfidenceLevel != 0.99 {
		t.Errorf("ConfidenceLevel = %v, want env override 0.99", cfg.Pipeline.ConfidenceLevel)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_UnrecognizedEnvIgnored(t *testing.T) {
	t.Setenv("EVENTSCOUT_BOGUS_SETTING", "whatever")

	if _, err := Load(); err != nil {
		t.Fatalf("Load() error = %v, want unrecognized env ignored", err)
	}
}

func TestValidate(t *testing.T) {
	valid := defaultConfig()
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() on defaults = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero workers", func(c *Config) { c.Pipeline.Workers = 0 }},
		{"unsupported confidence level", func(c *Config) { c.Pipeline.ConfidenceLevel = 0.85 }},
		{"score threshold above one", func(c *Config) { c.Pipeline.MinOpportunityScore = 1.5 }},
		{"zero recommendation cap", func(c *Config) { c.Pipeline.MaxRecommendations = 0 }},
		{"negative weight", func(c *Config) { c.Weights.Impact = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"EVENTSCOUT_WORKERS", "pipeline.workers"},
		{"EVENTSCOUT_WEIGHT_URGENCY", "weights.urgency"},
		{"EVENTSCOUT_CONFIG", ""},
		{"EVENTSCOUT_UNKNOWN", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
