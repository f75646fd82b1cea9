// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package recommend

import (
	"math"
	"sort"

	"github.com/tomtom215/eventscout/internal/opportunity"
)

// Priority formula weights.
const (
	urgencyWeight     = 0.3
	impactWeight      = 0.3
	feasibilityWeight = 0.2
	relevanceWeight   = 0.2
)

// researchPenalty halves the priority of research actions so they always
// rank below comparable action items.
const researchPenalty = 0.5

// tieEpsilon is the priority distance within which two recommendations count
// as tied and fall back to confidence.
const tieEpsilon = 0.01

// completenessResearchThreshold routes thin records to research actions.
const completenessResearchThreshold = 0.6

// Priority computes the 0-1 ranking key for a recommendation:
// urgency*0.3 + impact*0.3 + feasibility*0.2 + relevance*0.2, halved for
// research actions.
func Priority(ctx PriorityContext, actionType ActionType) float64 {
	p := ctx.Urgency*urgencyWeight +
		ctx.Impact*impactWeight +
		Feasibility(ctx)*feasibilityWeight +
		ctx.Relevance*relevanceWeight

	if actionType == ActionResearch {
		p *= researchPenalty
	}
	return clamp01(p)
}

// Feasibility estimates how actionable a recommendation is from record
// quality: 0.5 base + completeness*0.3 + confidence*0.2, with 0.1 credits
// for a known organizer and a source link, capped at 1.
func Feasibility(ctx PriorityContext) float64 {
	f := 0.5 + ctx.DataCompleteness*0.3 + ctx.IntelligenceConfidence*0.2
	if ctx.HasOrganizer {
		f += 0.1
	}
	if ctx.HasSourceURL {
		f += 0.1
	}
	return math.Min(1, f)
}

// TypeFor is the decision table mapping urgency and completeness to an
// action type: critical/high urgency acts now, thin data goes to research,
// everything else is strategic.
func TypeFor(urgencyLevel opportunity.Level, dataCompleteness float64) ActionType {
	switch {
	case urgencyLevel == opportunity.LevelCritical || urgencyLevel == opportunity.LevelHigh:
		return ActionImmediate
	case dataCompleteness < completenessResearchThreshold:
		return ActionResearch
	default:
		return ActionStrategic
	}
}

// Rank sorts recommendations in place and returns the slice: priority
// descending, with priorities within tieEpsilon treated as tied and broken
// by confidence descending. The sort is stable, so genuine ties (tied
// priority and equal confidence) keep their input order.
func Rank(recs []Recommendation) []Recommendation {
	sort.SliceStable(recs, func(i, j int) bool {
		if math.Abs(recs[i].Priority-recs[j].Priority) <= tieEpsilon {
			return recs[i].Confidence > recs[j].Confidence
		}
		return recs[i].Priority > recs[j].Priority
	})
	return recs
}

// clamp01 clamps v to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
