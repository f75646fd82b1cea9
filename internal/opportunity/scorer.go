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

// ROIEstimate is a coarse return-on-investment classification.
type ROIEstimate string

const (
	ROIHigh    ROIEstimate = "high"
	ROIMedium  ROIEstimate = "medium"
	ROILow     ROIEstimate = "low"
	ROIUnknown ROIEstimate = "unknown"
)

// neutralScore is the default when an input needed for a sub-score is absent.
const neutralScore = 0.5

// maxTermBoost caps the ICP term-ratio boost.
const maxTermBoost = 0.3

// Attendee-quality component weights: speakers count most, then sponsors,
// then participating organizations.
const (
	speakerWeight = 0.5
	sponsorWeight = 0.3
	orgWeight     = 0.2
)

// ROI composite thresholds.
const (
	roiHighThreshold   = 0.7
	roiMediumThreshold = 0.4
	roiLowThreshold    = 0.2
)

// cohortWindow is how far back comparable events are drawn from.
const cohortWindow = 12 * 30 * 24 * time.Hour

// categoryKeywords are the heuristic buckets used to pick comparable events.
// The first keyword found in an event's search text is its category.
var categoryKeywords = []string{
	"fintech", "legal", "health", "insurance", "banking",
	"security", "technology", "finance", "marketing",
}

// Score is the full per-event opportunity assessment.
type Score struct {
	// ICPMatchScore is how well the event matches the profile's ICP terms, 0-1.
	ICPMatchScore float64 `json:"icp_match_score"`

	// AttendeeQualityScore is the event's percentile standing in its cohort, 0-1.
	AttendeeQualityScore float64 `json:"attendee_quality_score"`

	// ROIEstimate is the coarse ROI classification.
	ROIEstimate ROIEstimate `json:"roi_estimate"`

	// UrgencyScore is the 0-1 urgency derived from dates and deadlines.
	UrgencyScore float64 `json:"urgency_score"`

	// Urgency carries the full urgency breakdown behind UrgencyScore.
	Urgency Indicators `json:"urgency"`

	// OverallScore is the ROI composite before classification, 0-1.
	OverallScore float64 `json:"overall_score"`

	// Confidence reflects how complete the underlying record is, 0-1.
	Confidence float64 `json:"confidence"`
}

// ScoreEvent computes the full opportunity score for one event. cohort is the
// set of comparable events supplied by the caller (see BuildCohort); now
// anchors all date arithmetic so results are reproducible.
func ScoreEvent(event *models.Event, profile *models.Profile, cohort []models.Event, now time.Time) Score {
	icp := ICPMatch(event, profile)
	quality := AttendeeQuality(event, cohort)
	urgency := UrgencyIndicators(event, now)
	composite := roiComposite(event, icp, quality)

	return Score{
		ICPMatchScore:        icp,
		AttendeeQualityScore: quality,
		ROIEstimate:          classifyROI(composite),
		UrgencyScore:         urgency.Score,
		Urgency:              urgency,
		OverallScore:         clamp01(composite),
		Confidence:           Completeness(event),
	}
}

// ICPMatch scores how well an event matches the profile's ICP terms.
//
// Each present field of {title, description, topics, speaker orgs, sponsor
// names, participating orgs} is a check; a check matches when any ICP term is
// contained in it. The base score is matched/total checks, boosted by the
// fraction of distinct ICP terms found in the core text (capped at 0.3).
// A profile with no ICP terms returns the neutral 0.5.
func ICPMatch(event *models.Event, profile *models.Profile) float64 {
	if !profile.HasICPTerms() {
		return neutralScore
	}

	terms := profile.ICPTerms
	checks := 0
	matched := 0

	check := func(text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		checks++
		if models.ContainsAnyTerm(text, terms) {
			matched++
		}
	}

	check(event.Title)
	check(event.Description)
	check(strings.Join(event.Topics, " "))
	check(strings.Join(event.SpeakerOrgs(), " "))
	check(strings.Join(event.SponsorNames(), " "))
	check(strings.Join(event.ParticipatingOrgs, " "))

	if checks == 0 {
		return 0
	}

	base := float64(matched) / float64(checks)
	boost := math.Min(models.TermMatchRatio(event.SearchText(), terms), maxTermBoost)

	return math.Min(1, base+boost)
}

// AttendeeQuality ranks the event's speaker, sponsor and participating-org
// counts against the cohort's distributions using mid-rank percentiles,
// weighted 50/30/20. An empty cohort returns the neutral 0.5.
func AttendeeQuality(event *models.Event, cohort []models.Event) float64 {
	if len(cohort) == 0 {
		return neutralScore
	}

	speakers := make([]int, 0, len(cohort))
	sponsors := make([]int, 0, len(cohort))
	orgs := make([]int, 0, len(cohort))
	for i := range cohort {
		speakers = append(speakers, len(cohort[i].Speakers))
		sponsors = append(sponsors, len(cohort[i].Sponsors))
		orgs = append(orgs, len(cohort[i].ParticipatingOrgs))
	}

	return speakerWeight*Percentile(len(event.Speakers), speakers) +
		sponsorWeight*Percentile(len(event.Sponsors), sponsors) +
		orgWeight*Percentile(len(event.ParticipatingOrgs), orgs)
}

// Percentile returns the mid-rank percentile of value within dist, in [0,1]:
// (countBelow + countEqual/2) / n. An empty distribution yields the neutral 0.5.
func Percentile(value int, dist []int) float64 {
	if len(dist) == 0 {
		return neutralScore
	}
	below := 0
	equal := 0
	for _, v := range dist {
		switch {
		case v < value:
			below++
		case v == value:
			equal++
		}
	}
	return (float64(below) + float64(equal)/2) / float64(len(dist))
}

// BuildCohort selects comparable events: same heuristic category keyword as
// the reference event, starting within the last twelve months of now. The
// reference event itself (matched by ID) is excluded.
func BuildCohort(event *models.Event, candidates []models.Event, now time.Time) []models.Event {
	category := categoryFor(event)
	cutoff := now.Add(-cohortWindow)

	var cohort []models.Event
	for i := range candidates {
		c := &candidates[i]
		if c.ID != "" && c.ID == event.ID {
			continue
		}
		if !c.StartsAt.IsZero() && c.StartsAt.Before(cutoff) {
			continue
		}
		if category != "" && categoryFor(c) != category {
			continue
		}
		cohort = append(cohort, *c)
	}
	return cohort
}

// categoryFor returns the first category keyword found in the event's search
// text, or "" when none match.
func categoryFor(event *models.Event) string {
	text := event.SearchText()
	for _, kw := range categoryKeywords {
		if strings.Contains(text, kw) {
			return kw
		}
	}
	return ""
}

// roiComposite blends ICP fit, attendee quality, event size, event type and
// data completeness into the 0-1 composite behind the ROI classification.
func roiComposite(event *models.Event, icpMatch, attendeeQuality float64) float64 {
	eventSize := len(event.Speakers) + 2*len(event.Sponsors)
	sizeScore := math.Min(float64(eventSize)/20, 1)

	typeBonus := 0.5
	text := strings.ToLower(event.Title + " " + event.Description)
	for _, kw := range []string{"conference", "summit", "forum"} {
		if strings.Contains(text, kw) {
			typeBonus = 1
			break
		}
	}

	return icpMatch*0.3 + attendeeQuality*0.3 + sizeScore*0.2 +
		typeBonus*0.1 + Completeness(event)*0.1
}

// classifyROI buckets the composite.
func classifyROI(composite float64) ROIEstimate {
	switch {
	case composite >= roiHighThreshold:
		return ROIHigh
	case composite >= roiMediumThreshold:
		return ROIMedium
	case composite >= roiLowThreshold:
		return ROILow
	default:
		return ROIUnknown
	}
}

// Completeness returns the collector's completeness estimate when present,
// otherwise an eight-point field checklist capped at 1: title 0.1, long
// description 0.2, topics 0.15, speakers 0.15, sponsors 0.1, city+country 0.1,
// start date 0.1, organizer 0.1.
func Completeness(event *models.Event) float64 {
	if event.DataCompleteness != nil {
		return clamp01(*event.DataCompleteness)
	}

	score := 0.0
	if event.Title != "" {
		score += 0.1
	}
	if len(event.Description) >= 100 {
		score += 0.2
	}
	if len(event.Topics) > 0 {
		score += 0.15
	}
	if len(event.Speakers) > 0 {
		score += 0.15
	}
	if len(event.Sponsors) > 0 {
		score += 0.1
	}
	if event.City != "" && event.Country != "" {
		score += 0.1
	}
	if !event.StartsAt.IsZero() {
		score += 0.1
	}
	if event.Organizer != "" {
		score += 0.1
	}
	return math.Min(1, score)
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
