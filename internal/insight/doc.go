// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

// Package insight combines relevance, impact, urgency and confidence into a
// single overall score per event, with the full factor breakdown exposed so
// callers can show why an insight scored the way it did.
//
// Each factor is itself a weighted sub-formula. The urgency and confidence
// factors consume the opportunity scorer's and significance engine's outputs
// when the caller supplies them; every missing input has a documented neutral
// default, so scoring is total.
//
// Factor weights default to relevance 0.3, impact 0.3, urgency 0.2,
// confidence 0.2. Callers may override any subset; the merged set is always
// renormalized to sum to 1 before use, and the normalized set actually
// applied is returned with the score.
package insight
