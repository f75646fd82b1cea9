// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

// Package config loads runtime configuration for the pipeline and command
// layers: defaults first, then an optional YAML file, then environment
// variables prefixed with EVENTSCOUT_.
//
// The scoring core itself takes all tunables (weights, confidence levels)
// as explicit per-call parameters; nothing in this package is read by the
// scoring packages, so there is no process-wide configuration singleton
// inside the core.
package config
