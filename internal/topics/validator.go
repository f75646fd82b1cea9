// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package topics

import (
	"sort"
	"strings"

	"github.com/tomtom215/eventscout/internal/models"
)

const (
	// MinLiteralMentions is the smallest number of corpus events that must
	// literally mention a topic for it to survive validation.
	MinLiteralMentions = 2

	// MinValidationScore is the smallest confirmed/claimed ratio accepted.
	MinValidationScore = 0.3

	// MaxTopics caps the number of validated topics returned.
	MaxTopics = 20

	// defaultRelevance is assumed when the generator supplied no relevance
	// estimate for a topic.
	defaultRelevance = 0.5
)

// Momentum thresholds for the growth-trajectory buckets.
const (
	risingThreshold = 0.7
	stableThreshold = 0.4
)

// industryBuckets maps industry labels to the keywords that place a matching
// event in that bucket. This is plain keyword containment, not classification.
var industryBuckets = map[string][]string{
	"Legal":      {"legal", "law firm", "litigation", "compliance"},
	"FinTech":    {"fintech", "financial technology", "payments"},
	"Healthcare": {"healthcare", "health", "medical", "pharma"},
	"Technology": {"technology", "tech", "software", "digital"},
	"Finance":    {"finance", "banking", "investment", "capital"},
	"Insurance":  {"insurance", "insurtech", "underwriting"},
}

// maxCountries is the number of countries kept in the geographic distribution.
const maxCountries = 5

// Validate recounts each candidate topic against the event corpus, drops
// unsupported candidates and enriches the survivors. The returned slice is
// ordered by momentum x relevance x validation descending and holds at most
// MaxTopics entries.
//
// Validation is total: an empty corpus simply rejects every candidate, and
// malformed candidates (empty topic string) are skipped.
func Validate(candidates []models.CandidateTopic, events []models.Event) []models.ValidatedTopic {
	validated := make([]models.ValidatedTopic, 0, len(candidates))

	for i := range candidates {
		if vt, ok := validateOne(&candidates[i], events); ok {
			validated = append(validated, vt)
		}
	}

	sort.SliceStable(validated, func(i, j int) bool {
		return orderingKey(&validated[i]) > orderingKey(&validated[j])
	})

	if len(validated) > MaxTopics {
		validated = validated[:MaxTopics]
	}
	return validated
}

// validateOne recounts a single candidate. The second return value is false
// when the candidate is rejected.
func validateOne(c *models.CandidateTopic, events []models.Event) (models.ValidatedTopic, bool) {
	topic := strings.ToLower(strings.TrimSpace(c.Topic))
	if topic == "" {
		return models.ValidatedTopic{}, false
	}

	matching := matchingEvents(topic, events)
	actual := len(matching)

	score := validationScore(actual, c.MentionCount)
	if actual < MinLiteralMentions || score < MinValidationScore {
		return models.ValidatedTopic{}, false
	}

	return models.ValidatedTopic{
		Topic:                  c.Topic,
		MentionCount:           actual, // literal recount wins over the claim
		ClaimedMentions:        c.MentionCount,
		ValidationScore:        score,
		GrowthRate:             c.GrowthRate,
		Momentum:               c.Momentum,
		RelevanceScore:         c.RelevanceScore,
		RelatedEvents:          eventIDs(matching),
		GeographicDistribution: countryDistribution(matching),
		IndustryBreakdown:      industryBreakdown(matching),
		GrowthTrajectory:       trajectoryFor(c.Momentum),
	}, true
}

// validationScore is confirmed/claimed capped at 1, or 0 below the literal
// mention floor. A non-positive claim with corpus support scores 1: the
// generator under-claimed, which the corpus cannot contradict.
func validationScore(actual, claimed int) float64 {
	if actual < MinLiteralMentions {
		return 0
	}
	if claimed <= 0 {
		return 1
	}
	ratio := float64(actual) / float64(claimed)
	if ratio > 1 {
		return 1
	}
	return ratio
}

// matchingEvents returns the corpus events whose search text contains the
// lowercased topic.
func matchingEvents(topicLower string, events []models.Event) []*models.Event {
	var matches []*models.Event
	for i := range events {
		if strings.Contains(events[i].SearchText(), topicLower) {
			matches = append(matches, &events[i])
		}
	}
	return matches
}

// eventIDs collects the non-empty IDs of matching events in corpus order.
func eventIDs(matching []*models.Event) []string {
	ids := make([]string, 0, len(matching))
	for _, e := range matching {
		if e.ID != "" {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

// countryDistribution returns the top countries among matching events by
// event count. Ties break alphabetically so output is deterministic.
func countryDistribution(matching []*models.Event) []models.CountryCount {
	counts := make(map[string]int)
	for _, e := range matching {
		if e.Country != "" {
			counts[e.Country]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	dist := make([]models.CountryCount, 0, len(counts))
	for country, n := range counts {
		dist = append(dist, models.CountryCount{Country: country, EventCount: n})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].EventCount != dist[j].EventCount {
			return dist[i].EventCount > dist[j].EventCount
		}
		return dist[i].Country < dist[j].Country
	})

	if len(dist) > maxCountries {
		dist = dist[:maxCountries]
	}
	return dist
}

// industryBreakdown counts matching events per industry keyword bucket. An
// event can land in several buckets; buckets with zero matches are omitted.
func industryBreakdown(matching []*models.Event) map[string]int {
	breakdown := make(map[string]int)
	for _, e := range matching {
		text := e.SearchText()
		for bucket, keywords := range industryBuckets {
			for _, kw := range keywords {
				if strings.Contains(text, kw) {
					breakdown[bucket]++
					break
				}
			}
		}
	}
	if len(breakdown) == 0 {
		return nil
	}
	return breakdown
}

// trajectoryFor buckets momentum into a coarse direction.
func trajectoryFor(momentum float64) models.GrowthTrajectory {
	switch {
	case momentum > risingThreshold:
		return models.TrajectoryRising
	case momentum > stableThreshold:
		return models.TrajectoryStable
	default:
		return models.TrajectoryDeclining
	}
}

// orderingKey is the descending sort key for validated topics.
func orderingKey(vt *models.ValidatedTopic) float64 {
	relevance := defaultRelevance
	if vt.RelevanceScore != nil {
		relevance = *vt.RelevanceScore
	}
	return vt.Momentum * relevance * vt.ValidationScore
}
