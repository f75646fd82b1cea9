// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package insight

import (
	"fmt"
	"time"

	"github.com/tomtom215/eventscout/internal/models"
	"github.com/tomtom215/eventscout/internal/opportunity"
	"github.com/tomtom215/eventscout/internal/significance"
)

// Input carries everything the scorer may consume for one event. Only Event
// is required; every other field has a neutral default when nil.
type Input struct {
	// Event is the record being scored.
	Event *models.Event

	// Opportunity is the opportunity scorer's output for the event, if the
	// caller ran it.
	Opportunity *opportunity.Score

	// Significance is the trend test tied to this insight, if one was run.
	// A nil value here means "no test", which is distinct from a test that
	// found nothing.
	Significance *significance.Result

	// Profile is the requester's interest profile, if any.
	Profile *models.Profile

	// GenericConfidence stands in for statistical significance when no test
	// was run but the caller has an external confidence estimate.
	GenericConfidence *float64

	// Weights optionally overrides any subset of the factor weights.
	Weights *Weights

	// Now anchors date arithmetic for the urgency fallback. The zero value
	// is replaced with time.Now at scoring time; supply it for reproducible
	// output.
	Now time.Time
}

// Score is the scored insight with its full factor breakdown and the
// normalized weight set that produced the overall score.
type Score struct {
	// OverallScore is the weighted combination of all factors, in [0,1].
	OverallScore float64 `json:"overall_score"`

	// Relevance is the profile-fit factor.
	Relevance RelevanceFactor `json:"relevance"`

	// Impact is the business-impact factor.
	Impact ImpactFactor `json:"impact"`

	// Urgency is the time-pressure factor.
	Urgency UrgencyFactor `json:"urgency"`

	// Confidence is the trust factor.
	Confidence ConfidenceFactor `json:"confidence"`

	// Weights is the post-normalization weight set actually applied.
	Weights Weights `json:"weights"`
}

// ScoreEvent scores one event. The only error condition is a missing event,
// which is a caller bug; sparse data degrades to neutral sub-scores instead
// of failing.
func ScoreEvent(in Input) (*Score, error) {
	if in.Event == nil {
		return nil, fmt.Errorf("insight: nil event")
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	weights := Resolve(in.Weights)

	relevance := relevanceFactor(in.Event, in.Opportunity, in.Profile)
	impact := impactFactor(in.Event, in.Opportunity)
	urgency := urgencyFactor(in.Event, in.Opportunity, now)

	var sigScore *float64
	if in.Significance != nil {
		sigScore = &in.Significance.SignificanceScore
	}
	confidence := confidenceFactor(in.Event, sigScore, in.GenericConfidence)

	overall := relevance.Score*weights.Relevance +
		impact.Score*weights.Impact +
		urgency.Score*weights.Urgency +
		confidence.Score*weights.Confidence

	return &Score{
		OverallScore: clamp01(overall),
		Relevance:    relevance,
		Impact:       impact,
		Urgency:      urgency,
		Confidence:   confidence,
		Weights:      weights,
	}, nil
}
