// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/eventscout/internal/insight"
	"github.com/tomtom215/eventscout/internal/models"
	"github.com/tomtom215/eventscout/internal/opportunity"
	"github.com/tomtom215/eventscout/internal/recommend"
	"github.com/tomtom215/eventscout/internal/significance"
)

// TopicPeriodCounts carries per-topic observation counts for two adjacent
// reporting periods. The caller aggregates these from whatever store holds
// historical batches; the pipeline only consumes them.
type TopicPeriodCounts struct {
	Topic         string `json:"topic"`
	CurrentCount  int    `json:"current_count"`
	PreviousCount int    `json:"previous_count"`
	CurrentTotal  int    `json:"current_total"`
	PreviousTotal int    `json:"previous_total"`
}

// Request is one scoring batch.
type Request struct {
	// Events is the corpus to score. Order is preserved in the response.
	Events []models.Event `json:"events"`

	// Profile describes the organization the scores are computed for.
	// Nil yields neutral relevance scoring.
	Profile *models.Profile `json:"profile,omitempty"`

	// CandidateTopics are externally proposed trends to cross-validate
	// against the event corpus.
	CandidateTopics []models.CandidateTopic `json:"candidate_topics,omitempty"`

	// PeriodCounts feeds the per-topic trend significance tests. Topics
	// without counts are reported as unassessed.
	PeriodCounts []TopicPeriodCounts `json:"period_counts,omitempty"`

	// Cohort is an optional comparison population for attendee-quality
	// percentiles. When empty, a cohort is derived from Events.
	Cohort []models.Event `json:"cohort,omitempty"`

	// Now anchors all date arithmetic. Zero means time.Now at Run time.
	Now time.Time `json:"now,omitempty"`

	// Weights overrides the configured insight factor weights for this
	// batch only.
	Weights *insight.Weights `json:"weights,omitempty"`

	// GenericConfidence is the batch-wide fallback statistical confidence
	// used when no trend test applies to an event.
	GenericConfidence *float64 `json:"generic_confidence,omitempty"`
}

// TrendAssessment is the outcome of one per-topic significance test.
type TrendAssessment struct {
	Topic string `json:"topic"`

	// Assessed is false when the sample was too small to test; Result is
	// nil in that case. An assessed topic with a non-significant result
	// still has Assessed true.
	Assessed bool                 `json:"assessed"`
	Result   *significance.Result `json:"result,omitempty"`
}

// EventResult pairs one input event with both of its scores.
type EventResult struct {
	EventID     string             `json:"event_id"`
	Title       string             `json:"title"`
	Opportunity *opportunity.Score `json:"opportunity"`
	Insight     *insight.Score     `json:"insight"`
}

// Metadata summarizes a batch run.
type Metadata struct {
	EventsIn       int             `json:"events_in"`
	EventsScored   int             `json:"events_scored"`
	EventsSkipped  int             `json:"events_skipped"`
	TopicsProposed int             `json:"topics_proposed"`
	TopicsValid    int             `json:"topics_valid"`
	DurationMS     int64           `json:"duration_ms"`
	Weights        insight.Weights `json:"weights"`
}

// Response is the complete output of one batch.
type Response struct {
	BatchID         uuid.UUID                  `json:"batch_id"`
	GeneratedAt     time.Time                  `json:"generated_at"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	Topics          []models.ValidatedTopic    `json:"topics"`
	Trends          []TrendAssessment          `json:"trends"`
	Events          []EventResult              `json:"events"`
	Metadata        Metadata                   `json:"metadata"`
}
