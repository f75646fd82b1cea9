// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

// Package topics cross-validates candidate "hot topics" proposed by the
// external text-generation service against the literal event corpus.
//
// The generator is free to claim any mention count or growth figure; none of
// it is trusted. Each candidate's topic string is recounted as a
// case-insensitive substring across every event's title, description and
// topic tags. Candidates confirmed in fewer than two events, or whose
// confirmed count falls below 30% of the claim, are dropped. For survivors
// the literal recount replaces the claimed count outright: the corpus is the
// source of truth, not the generator.
//
// Surviving topics are enriched with a geographic distribution (top countries
// by matching-event count), a keyword-bucket industry breakdown and a growth
// trajectory derived from momentum, then ordered by
// momentum x relevance x validation and capped.
package topics
