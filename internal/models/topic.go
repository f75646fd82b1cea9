// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package models

// GrowthTrajectory buckets a topic's momentum into a coarse direction label.
type GrowthTrajectory string

const (
	TrajectoryRising    GrowthTrajectory = "rising"
	TrajectoryStable    GrowthTrajectory = "stable"
	TrajectoryDeclining GrowthTrajectory = "declining"
)

// CandidateTopic is a "hot topic" proposed by the external text-generation
// service. Every numeric claim on it is untrusted until the topics package
// has recounted it against the literal event corpus.
type CandidateTopic struct {
	// Topic is the topic name as proposed by the generator.
	Topic string `json:"topic"`

	// MentionCount is the generator's claimed number of mentions.
	MentionCount int `json:"mention_count"`

	// GrowthRate is the generator's claimed period-over-period growth, in percent.
	GrowthRate float64 `json:"growth_rate"`

	// Momentum is the generator's 0-1 momentum estimate.
	Momentum float64 `json:"momentum"`

	// RelevanceScore is the generator's 0-1 relevance estimate for the
	// requesting profile. Nil means the generator did not supply one.
	RelevanceScore *float64 `json:"relevance_score,omitempty"`

	// RelatedEvents lists event IDs the generator associated with the topic.
	RelatedEvents []string `json:"related_events,omitempty"`
}

// CountryCount is one row of a topic's geographic distribution.
type CountryCount struct {
	// Country is the country name as it appears on matching events.
	Country string `json:"country"`

	// EventCount is the number of matching events hosted there.
	EventCount int `json:"event_count"`
}

// ValidatedTopic is a candidate topic that survived literal cross-validation,
// with its claimed counts replaced by recounted ones and enrichment metadata
// attached.
type ValidatedTopic struct {
	// Topic is the topic name.
	Topic string `json:"topic"`

	// MentionCount is the recounted number of events literally mentioning
	// the topic. This overwrites whatever the generator claimed.
	MentionCount int `json:"mention_count"`

	// ClaimedMentions preserves the generator's original claim for audit.
	ClaimedMentions int `json:"claimed_mentions"`

	// ValidationScore is confirmed/claimed mentions, capped at 1.
	ValidationScore float64 `json:"validation_score"`

	// GrowthRate carries the generator's claimed growth, in percent.
	GrowthRate float64 `json:"growth_rate"`

	// Momentum carries the generator's 0-1 momentum estimate.
	Momentum float64 `json:"momentum"`

	// RelevanceScore carries the generator's relevance estimate, if any.
	RelevanceScore *float64 `json:"relevance_score,omitempty"`

	// RelatedEvents lists the IDs of corpus events that literally mention
	// the topic, replacing the generator's claimed associations.
	RelatedEvents []string `json:"related_events,omitempty"`

	// GeographicDistribution is the top countries by matching-event count.
	GeographicDistribution []CountryCount `json:"geographic_distribution,omitempty"`

	// IndustryBreakdown counts matching events per industry keyword bucket.
	IndustryBreakdown map[string]int `json:"industry_breakdown,omitempty"`

	// GrowthTrajectory buckets Momentum into rising/stable/declining.
	GrowthTrajectory GrowthTrajectory `json:"growth_trajectory"`
}
