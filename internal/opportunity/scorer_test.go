// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package opportunity

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/eventscout/internal/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestICPMatch_TitleMatch(t *testing.T) {
	profile := &models.Profile{ICPTerms: []string{"fintech"}}
	event := &models.Event{Title: "Fintech Summit 2025"}

	got := ICPMatch(event, profile)
	if got < 0.4 {
		t.Errorf("ICPMatch() = %f, want >= 0.4 for a title match", got)
	}
	if got > 1 {
		t.Errorf("ICPMatch() = %f, want <= 1", got)
	}
}

func TestICPMatch_NoTermsNeutral(t *testing.T) {
	event := &models.Event{Title: "Fintech Summit"}
	if got := ICPMatch(event, &models.Profile{}); got != 0.5 {
		t.Errorf("ICPMatch() with no ICP terms = %f, want neutral 0.5", got)
	}
	if got := ICPMatch(event, nil); got != 0.5 {
		t.Errorf("ICPMatch() with nil profile = %f, want neutral 0.5", got)
	}
}

func TestICPMatch_FieldChecks(t *testing.T) {
	profile := &models.Profile{ICPTerms: []string{"general counsel", "legal ops"}}
	event := &models.Event{
		Title:       "Corporate Law Forum",
		Description: "A gathering for general counsel and their teams.",
		Topics:      []string{"governance"},
		Speakers:    []models.Speaker{{Name: "A. Jones", Org: "Legal Ops Collective"}},
	}

	// Four checks present (title, description, topics, speaker orgs); the
	// description and speaker-org checks match.
	got := ICPMatch(event, profile)

	base := 2.0 / 4.0
	// Both distinct terms appear in title+description+topics? Only
	// "general counsel" does, so the ratio boost is 0.5 capped... 0.5 of 2
	// terms = 0.5, capped at 0.3.
	want := math.Min(1, base+0.3)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ICPMatch() = %f, want %f", got, want)
	}
}

func TestICPMatch_BoostCapped(t *testing.T) {
	profile := &models.Profile{ICPTerms: []string{"fintech"}}
	event := &models.Event{Title: "Fintech Fintech Fintech"}

	// One check, matched; full term ratio would add 1.0 but caps at 0.3.
	if got := ICPMatch(event, profile); got != 1 {
		t.Errorf("ICPMatch() = %f, want clamp to 1", got)
	}
}

func TestPercentile(t *testing.T) {
	dist := []int{1, 3, 3, 7, 10}

	tests := []struct {
		name  string
		value int
		want  float64
	}{
		{"below all", 0, 0},
		{"equal to minimum", 1, 0.1},
		{"mid-rank of ties", 3, (1.0 + 2.0/2) / 5},
		{"between values", 5, 3.0 / 5},
		{"above all", 11, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentile(tt.value, dist); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Percentile(%d) = %f, want %f", tt.value, got, tt.want)
			}
		})
	}
}

func TestPercentile_Monotonic(t *testing.T) {
	dist := []int{2, 4, 4, 9, 9, 9, 15, 30}
	prev := -1.0
	for v := 0; v <= 35; v++ {
		got := Percentile(v, dist)
		if got < prev {
			t.Fatalf("Percentile(%d) = %f < Percentile(%d) = %f; must be non-decreasing", v, got, v-1, prev)
		}
		prev = got
	}
}

func TestPercentile_EmptyDistribution(t *testing.T) {
	if got := Percentile(5, nil); got != 0.5 {
		t.Errorf("Percentile() on empty distribution = %f, want neutral 0.5", got)
	}
}

func TestAttendeeQuality(t *testing.T) {
	cohort := []models.Event{
		{Speakers: make([]models.Speaker, 2), Sponsors: make([]models.Sponsor, 1)},
		{Speakers: make([]models.Speaker, 5), Sponsors: make([]models.Sponsor, 3), ParticipatingOrgs: []string{"a"}},
		{Speakers: make([]models.Speaker, 8), Sponsors: make([]models.Sponsor, 5), ParticipatingOrgs: []string{"a", "b"}},
	}

	strong := &models.Event{
		Speakers:          make([]models.Speaker, 10),
		Sponsors:          make([]models.Sponsor, 6),
		ParticipatingOrgs: []string{"a", "b", "c"},
	}
	weak := &models.Event{}

	qStrong := AttendeeQuality(strong, cohort)
	qWeak := AttendeeQuality(weak, cohort)

	if qStrong != 1 {
		t.Errorf("AttendeeQuality(strong) = %f, want 1 (above entire cohort)", qStrong)
	}
	if qWeak >= qStrong {
		t.Errorf("AttendeeQuality(weak) = %f, want below strong %f", qWeak, qStrong)
	}
}

func TestAttendeeQuality_EmptyCohort(t *testing.T) {
	event := &models.Event{Speakers: make([]models.Speaker, 10)}
	if got := AttendeeQuality(event, nil); got != 0.5 {
		t.Errorf("AttendeeQuality() with empty cohort = %f, want neutral 0.5", got)
	}
}

func TestBuildCohort(t *testing.T) {
	ref := &models.Event{ID: "ref", Title: "Fintech Summit", StartsAt: testNow.AddDate(0, 1, 0)}
	candidates := []models.Event{
		{ID: "ref", Title: "Fintech Summit"},                                           // self, excluded
		{ID: "a", Title: "Fintech Forum", StartsAt: testNow.AddDate(0, -2, 0)},         // kept
		{ID: "b", Title: "Fintech Expo", StartsAt: testNow.AddDate(-2, 0, 0)},          // too old
		{ID: "c", Title: "Gardening Fair", StartsAt: testNow.AddDate(0, -1, 0)},        // wrong category
		{ID: "d", Title: "Fintech Breakfast"},                                          // no date, kept
	}

	cohort := BuildCohort(ref, candidates, testNow)
	if len(cohort) != 2 {
		t.Fatalf("BuildCohort() = %d events, want 2", len(cohort))
	}
	if cohort[0].ID != "a" || cohort[1].ID != "d" {
		t.Errorf("BuildCohort() = [%s, %s], want [a, d]", cohort[0].ID, cohort[1].ID)
	}
}

func TestScoreEvent_ROIClassification(t *testing.T) {
	completeness := 1.0
	profile := &models.Profile{ICPTerms: []string{"fintech"}}

	rich := &models.Event{
		ID:               "rich",
		Title:            "Fintech Conference Europe",
		Description:      strings.Repeat("Payments, banking and fintech leaders. ", 5),
		Topics:           []string{"fintech", "payments"},
		Speakers:         make([]models.Speaker, 12),
		Sponsors:         make([]models.Sponsor, 6),
		DataCompleteness: &completeness,
	}
	sparse := &models.Event{ID: "sparse", Title: "Meetup"}

	richScore := ScoreEvent(rich, profile, nil, testNow)
	sparseScore := ScoreEvent(sparse, profile, nil, testNow)

	if richScore.ROIEstimate != ROIHigh {
		t.Errorf("rich ROIEstimate = %q (overall %f), want high", richScore.ROIEstimate, richScore.OverallScore)
	}
	if sparseScore.ROIEstimate == ROIHigh {
		t.Errorf("sparse ROIEstimate = %q, want below high", sparseScore.ROIEstimate)
	}
	if richScore.OverallScore < 0 || richScore.OverallScore > 1 {
		t.Errorf("OverallScore = %f outside [0,1]", richScore.OverallScore)
	}
}

func TestScoreEvent_UnknownROIMapping(t *testing.T) {
	// An empty record with a hostile profile lands below every threshold.
	profile := &models.Profile{ICPTerms: []string{"zzzz"}}
	event := &models.Event{Title: "x", DataCompleteness: new(float64)}

	got := ScoreEvent(event, profile, []models.Event{
		{Speakers: make([]models.Speaker, 50), Sponsors: make([]models.Sponsor, 50), ParticipatingOrgs: make([]string, 50)},
		{Speakers: make([]models.Speaker, 40), Sponsors: make([]models.Sponsor, 40), ParticipatingOrgs: make([]string, 40)},
	}, testNow)

	if got.ROIEstimate != ROIUnknown {
		t.Errorf("ROIEstimate = %q (overall %f), want unknown", got.ROIEstimate, got.OverallScore)
	}
}

func TestCompleteness_Checklist(t *testing.T) {
	tests := []struct {
		name  string
		event models.Event
		want  float64
	}{
		{"empty record", models.Event{}, 0},
		{"title only", models.Event{Title: "x"}, 0.1},
		{
			"everything",
			models.Event{
				Title:       "x",
				Description: strings.Repeat("d", 120),
				Topics:      []string{"t"},
				Speakers:    []models.Speaker{{Name: "s"}},
				Sponsors:    []models.Sponsor{{Name: "p"}},
				City:        "Berlin",
				Country:     "Germany",
				StartsAt:    testNow,
				Organizer:   "org",
			},
			1,
		},
		{"short description not counted", models.Event{Title: "x", Description: "short"}, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Completeness(&tt.event); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Completeness() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestCompleteness_PrecomputedWins(t *testing.T) {
	pre := 0.42
	event := models.Event{Title: "x", DataCompleteness: &pre}
	if got := Completeness(&event); got != 0.42 {
		t.Errorf("Completeness() = %f, want precomputed 0.42", got)
	}
}
