// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package recommend

// ActionType classifies a recommendation by how soon it should be acted on.
type ActionType string

const (
	// ActionImmediate marks opportunities with closing windows.
	ActionImmediate ActionType = "immediate"

	// ActionStrategic marks opportunities worth planning for.
	ActionStrategic ActionType = "strategic"

	// ActionResearch marks items needing more data before acting.
	ActionResearch ActionType = "research"
)

// Recommendation is a ranked, confidence-qualified suggestion produced for
// the presentation layer. It is a plain record; all scoring happened upstream.
type Recommendation struct {
	// ID uniquely identifies the recommendation within its batch.
	ID string `json:"id"`

	// Type classifies the action.
	Type ActionType `json:"type"`

	// Priority is the 0-1 ranking key.
	Priority float64 `json:"priority"`

	// Confidence is the 0-1 trust qualifier, used to break priority ties.
	Confidence float64 `json:"confidence"`

	// Title is a short headline.
	Title string `json:"title"`

	// Description expands the headline.
	Description string `json:"description,omitempty"`

	// Why explains what drove the priority.
	Why string `json:"why,omitempty"`

	// When suggests timing.
	When string `json:"when,omitempty"`

	// How suggests a first step.
	How string `json:"how,omitempty"`

	// ExpectedOutcome states what acting should achieve.
	ExpectedOutcome string `json:"expected_outcome,omitempty"`

	// EventID links back to the originating event, if any.
	EventID string `json:"event_id,omitempty"`

	// TrendID links back to the originating trend/topic, if any.
	TrendID string `json:"trend_id,omitempty"`
}

// PriorityContext carries the per-recommendation inputs to the priority
// formula. All values are 0-1.
type PriorityContext struct {
	// Urgency is the time-pressure component.
	Urgency float64

	// Impact is the business-impact component.
	Impact float64

	// Relevance is the profile-fit component.
	Relevance float64

	// DataCompleteness is the underlying record's completeness.
	DataCompleteness float64

	// IntelligenceConfidence is the insight scorer's confidence factor.
	IntelligenceConfidence float64

	// HasOrganizer is true when the event names an organizing body.
	HasOrganizer bool

	// HasSourceURL is true when the record links its source.
	HasSourceURL bool
}
