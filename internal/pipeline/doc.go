// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

// Package pipeline orchestrates a full scoring batch: topic validation,
// per-topic trend tests, concurrent per-event opportunity and insight
// scoring, recommendation generation and the final deterministic ranking.
//
// The scoring packages underneath are pure; this layer owns everything they
// deliberately don't: fan-out across events, context cancellation, logging,
// metrics and batch identity. Per-event scoring runs on a bounded worker
// pool and results are collected in input order, so the final single-threaded
// ranking step sees a deterministic sequence regardless of worker scheduling.
//
// Malformed events (no identifying fields at all) are skipped and counted,
// never fatal. Trend tests that cannot be assessed for lack of data are
// reported as unassessed, which is distinct from "assessed, not significant".
package pipeline
