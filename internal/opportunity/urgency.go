// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package opportunity

import (
	"math"
	"strings"
	"time"

	"github.com/tomtom215/eventscout/internal/models"
)

// Level is a discretized urgency bucket.
type Level string

const (
	LevelNone     Level = "none"
	LevelLow      Level = "low"
	LevelMedium   Level = "medium"
	LevelHigh     Level = "high"
	LevelCritical Level = "critical"
)

// Level thresholds over the mean urgency factor.
const (
	criticalThreshold = 0.8
	highThreshold     = 0.6
	mediumThreshold   = 0.4
	lowThreshold      = 0.2
)

// Deadline heuristics: assumed lead time before the event for each kind of
// cutoff mentioned in the description.
const (
	earlyBirdLeadDays    = 30
	registrationLeadDays = 14
)

// recommendedActions maps each level to its fixed action string.
var recommendedActions = map[Level]string{
	LevelCritical: "Act immediately: registration or sponsorship windows are closing within days.",
	LevelHigh:     "Prioritize this week: key deadlines are approaching.",
	LevelMedium:   "Plan within the next two weeks to keep options open.",
	LevelLow:      "Add to the monitoring list and revisit next cycle.",
	LevelNone:     "No time pressure detected; evaluate on merit alone.",
}

// Indicators is the full urgency breakdown for one event.
type Indicators struct {
	// DaysUntilEvent is the whole days from now to the event start. Nil when
	// the start date is unknown.
	DaysUntilEvent *int `json:"days_until_event,omitempty"`

	// Factors lists the individual urgency contributions that fired.
	Factors []Factor `json:"factors,omitempty"`

	// Score is the mean of the factor values, 0 when none fired.
	Score float64 `json:"score"`

	// Level buckets Score.
	Level Level `json:"level"`

	// RecommendedAction is the fixed action string for Level.
	RecommendedAction string `json:"recommended_action"`
}

// Factor is one urgency contribution with its source.
type Factor struct {
	// Source names what produced the factor: event_date, early_bird or
	// registration_deadline.
	Source string `json:"source"`

	// Value is the factor's 0-1 contribution.
	Value float64 `json:"value"`
}

// UrgencyIndicators derives urgency from the event date and registration
// language in the description. The computation is anchored at now, so
// identical inputs always produce identical output.
//
// An unknown start date fires no factors and yields level "none" with score
// 0, which callers must read as "no time pressure detected", not "scored low".
func UrgencyIndicators(event *models.Event, now time.Time) Indicators {
	var ind Indicators

	if event.StartsAt.IsZero() {
		ind.Level = LevelNone
		ind.RecommendedAction = recommendedActions[LevelNone]
		return ind
	}

	days := int(math.Floor(event.StartsAt.Sub(now).Hours() / 24))
	ind.DaysUntilEvent = &days

	if f, ok := dateProximityFactor(days); ok {
		ind.Factors = append(ind.Factors, Factor{Source: "event_date", Value: f})
	}

	desc := strings.ToLower(event.Description)

	if containsAny(desc, "early bird", "early-bird", "early registration") {
		if f, ok := cutoffFactor(days-earlyBirdLeadDays, 7, 0.8, 14, 0.5); ok {
			ind.Factors = append(ind.Factors, Factor{Source: "early_bird", Value: f})
		}
	}

	if containsAny(desc, "deadline", "register by") {
		if f, ok := cutoffFactor(days-registrationLeadDays, 3, 1.0, 7, 0.7); ok {
			ind.Factors = append(ind.Factors, Factor{Source: "registration_deadline", Value: f})
		}
	}

	ind.Score = meanFactor(ind.Factors)
	ind.Level = levelFor(ind.Score)
	ind.RecommendedAction = recommendedActions[ind.Level]
	return ind
}

// dateProximityFactor ramps urgency as the event approaches: within 30 days
// the factor climbs linearly to 1; between 30 and 90 days it decays from 0.5.
// Past events and events more than 90 days out contribute nothing.
func dateProximityFactor(days int) (float64, bool) {
	switch {
	case days > 0 && days <= 30:
		return 1 - float64(days)/30, true
	case days > 30 && days <= 90:
		return 0.5 - float64(days-30)/120, true
	default:
		return 0, false
	}
}

// cutoffFactor scores an assumed registration cutoff daysToCutoff days away.
// Cutoffs already passed contribute nothing.
func cutoffFactor(daysToCutoff, nearDays int, nearValue float64, farDays int, farValue float64) (float64, bool) {
	switch {
	case daysToCutoff < 0:
		return 0, false
	case daysToCutoff <= nearDays:
		return nearValue, true
	case daysToCutoff <= farDays:
		return farValue, true
	default:
		return 0, false
	}
}

// meanFactor averages factor values; no factors means zero urgency.
func meanFactor(factors []Factor) float64 {
	if len(factors) == 0 {
		return 0
	}
	sum := 0.0
	for _, f := range factors {
		sum += f.Value
	}
	return sum / float64(len(factors))
}

// levelFor buckets an urgency score.
func levelFor(score float64) Level {
	switch {
	case score >= criticalThreshold:
		return LevelCritical
	case score >= highThreshold:
		return LevelHigh
	case score >= mediumThreshold:
		return LevelMedium
	case score >= lowThreshold:
		return LevelLow
	default:
		return LevelNone
	}
}

// containsAny reports whether text contains any of the needles.
func containsAny(text string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
