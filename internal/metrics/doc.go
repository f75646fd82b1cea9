// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

// Package metrics exposes Prometheus instrumentation for the scoring
// pipeline. The scoring packages themselves never touch metrics; only the
// pipeline layer updates them, keeping the core referentially transparent.
package metrics
