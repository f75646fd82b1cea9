// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

// Package opportunity computes per-event opportunity scores: how well an
// event matches the requester's ideal customer profile, how its attendee
// quality ranks against a cohort of comparable events, a coarse ROI estimate,
// and urgency indicators derived from the event date and registration
// language in the description.
//
// Every function here is total. Missing optional inputs (no ICP terms, empty
// cohort, unknown start date) fall back to documented neutral values rather
// than failing, so a sparse record scores as "unknown", never as an error.
package opportunity
