// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

// Package models provides the data structures exchanged between the scoring
// core and its callers.
//
// All types here are value objects: no entity owns another, nothing is cached,
// and every scoring pass recomputes from the inputs the caller supplies. Input
// records (Event, Profile, CandidateTopic) are owned and persisted by external
// systems; output records (OpportunityScore, InsightScore, Recommendation and
// friends) are plain serializable results with no behavior attached.
//
// CandidateTopic is the one deliberately untrusted type: it is produced by an
// external text-generation service and must pass through the topics package
// before any of its numeric claims are believed.
package models
