// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

// Package recommend turns scored insights into typed, prioritized
// recommendations and ranks them deterministically.
//
// Priority blends urgency, impact, feasibility and relevance; research
// actions are always halved so that "go investigate" never outranks "go act".
// The sort is stable: priorities within 0.01 of each other count as tied and
// fall back to confidence, and genuine ties keep their input order. Given the
// same inputs the ranking is reproducible run to run.
//
// There is no state machine here. The recommendation type (immediate,
// strategic, research) is a pure decision-table output per recommendation.
package recommend
