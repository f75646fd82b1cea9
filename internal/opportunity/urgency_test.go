// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package opportunity

import (
	"math"
	"testing"
	"time"

	"github.com/tomtom215/eventscout/internal/models"
)

func eventStartingIn(days int, description string) *models.Event {
	return &models.Event{
		Title:       "Sample Conference",
		Description: description,
		StartsAt:    testNow.Add(time.Duration(days) * 24 * time.Hour),
	}
}

func TestUrgencyIndicators_NearEventIsCritical(t *testing.T) {
	// Five days out with no deadline text: 1 - 5/30 = 0.833.
	ind := UrgencyIndicators(eventStartingIn(5, ""), testNow)

	if ind.Level != LevelCritical && ind.Level != LevelHigh {
		t.Errorf("Level = %q, want high or critical at 5 days out", ind.Level)
	}
	if want := 1 - 5.0/30.0; math.Abs(ind.Score-want) > 1e-9 {
		t.Errorf("Score = %f, want %f", ind.Score, want)
	}
	if ind.DaysUntilEvent == nil || *ind.DaysUntilEvent != 5 {
		t.Errorf("DaysUntilEvent = %v, want 5", ind.DaysUntilEvent)
	}
}

func TestUrgencyIndicators_DateRamp(t *testing.T) {
	tests := []struct {
		name      string
		days      int
		wantScore float64
	}{
		{"one day out", 1, 1 - 1.0/30.0},
		{"thirty days out", 30, 0},
		{"sixty days out", 60, 0.5 - 30.0/120.0},
		{"ninety days out", 90, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ind := UrgencyIndicators(eventStartingIn(tt.days, ""), testNow)
			if math.Abs(ind.Score-tt.wantScore) > 1e-9 {
				t.Errorf("Score = %f, want %f", ind.Score, tt.wantScore)
			}
		})
	}
}

func TestUrgencyIndicators_BeyondWindow(t *testing.T) {
	ind := UrgencyIndicators(eventStartingIn(120, ""), testNow)
	if ind.Score != 0 {
		t.Errorf("Score = %f, want 0 beyond 90 days", ind.Score)
	}
	if ind.Level != LevelNone {
		t.Errorf("Level = %q, want none", ind.Level)
	}
}

func TestUrgencyIndicators_PastEvent(t *testing.T) {
	ind := UrgencyIndicators(eventStartingIn(-3, "register by Friday, deadline soon"), testNow)
	if len(ind.Factors) != 0 {
		t.Errorf("Factors = %v, want none for a past event", ind.Factors)
	}
	if ind.Level != LevelNone {
		t.Errorf("Level = %q, want none", ind.Level)
	}
}

func TestUrgencyIndicators_EarlyBird(t *testing.T) {
	tests := []struct {
		name       string
		days       int
		wantNamed  float64
		wantAbsent bool
	}{
		// Cutoff is assumed 30 days before the event.
		{"cutoff within a week", 35, 0.8, false},
		{"cutoff within two weeks", 42, 0.5, false},
		{"cutoff far off", 60, 0, true},
		{"cutoff already passed", 20, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ind := UrgencyIndicators(eventStartingIn(tt.days, "Early bird pricing available!"), testNow)
			var got *Factor
			for i := range ind.Factors {
				if ind.Factors[i].Source == "early_bird" {
					got = &ind.Factors[i]
				}
			}
			if tt.wantAbsent {
				if got != nil {
					t.Errorf("early_bird factor = %v, want absent", got)
				}
				return
			}
			if got == nil {
				t.Fatal("early_bird factor missing")
			}
			if got.Value != tt.wantNamed {
				t.Errorf("early_bird factor = %f, want %f", got.Value, tt.wantNamed)
			}
		})
	}
}

func TestUrgencyIndicators_RegistrationDeadline(t *testing.T) {
	// 16 days out: assumed cutoff 14 days before the event is 2 days away.
	ind := UrgencyIndicators(eventStartingIn(16, "Registration deadline approaching"), testNow)

	var deadline *Factor
	for i := range ind.Factors {
		if ind.Factors[i].Source == "registration_deadline" {
			deadline = &ind.Factors[i]
		}
	}
	if deadline == nil {
		t.Fatal("registration_deadline factor missing")
	}
	if deadline.Value != 1.0 {
		t.Errorf("registration_deadline factor = %f, want 1.0 at 2 days to cutoff", deadline.Value)
	}

	// The date factor also fired, so the score is the mean of both.
	want := ((1 - 16.0/30.0) + 1.0) / 2
	if math.Abs(ind.Score-want) > 1e-9 {
		t.Errorf("Score = %f, want mean %f", ind.Score, want)
	}
}

func TestUrgencyIndicators_UnknownDate(t *testing.T) {
	ind := UrgencyIndicators(&models.Event{Title: "Undated", Description: "early bird deadline"}, testNow)

	if ind.DaysUntilEvent != nil {
		t.Errorf("DaysUntilEvent = %v, want nil", *ind.DaysUntilEvent)
	}
	if ind.Score != 0 || ind.Level != LevelNone {
		t.Errorf("Score/Level = %f/%q, want 0/none", ind.Score, ind.Level)
	}
	if ind.RecommendedAction == "" {
		t.Error("RecommendedAction empty; every level maps to a fixed action")
	}
}

func TestLevelThresholds(t *testing.T) {
	tests := []struct {
		score float64
		want  Level
	}{
		{0.85, LevelCritical},
		{0.8, LevelCritical},
		{0.7, LevelHigh},
		{0.5, LevelMedium},
		{0.3, LevelLow},
		{0.1, LevelNone},
		{0, LevelNone},
	}

	for _, tt := range tests {
		if got := levelFor(tt.score); got != tt.want {
			t.Errorf("levelFor(%f) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRecommendedActions_AllLevelsCovered(t *testing.T) {
	for _, level := range []Level{LevelNone, LevelLow, LevelMedium, LevelHigh, LevelCritical} {
		if recommendedActions[level] == "" {
			t.Errorf("no recommended action for level %q", level)
		}
	}
}
