// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package pipeline

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tomtom215/eventscout/internal/models"
	"github.com/tomtom215/eventscout/internal/recommend"
	"github.com/tomtom215/eventscout/internal/significance"
)

// howByType gives each action type a concrete first step.
var howByType = map[recommend.ActionType]string{
	recommend.ActionImmediate: "Contact the organizer about sponsorship or attendance before the window closes.",
	recommend.ActionStrategic: "Add the event to the engagement plan and assign an owner for outreach.",
	recommend.ActionResearch:  "Fill the record gaps (dates, speakers, sponsors) before committing budget.",
}

// eventRecommendation turns one scored event into a recommendation, or
// reports false when the event's opportunity score falls below the
// configured floor.
func eventRecommendation(event *models.Event, r *EventResult, minScore float64) (recommend.Recommendation, bool) {
	opp := r.Opportunity
	ins := r.Insight
	if opp.OverallScore < minScore {
		return recommend.Recommendation{}, false
	}

	pctx := recommend.PriorityContext{
		Urgency:                ins.Urgency.Score,
		Impact:                 ins.Impact.Score,
		Relevance:              ins.Relevance.Score,
		DataCompleteness:       opp.Confidence,
		IntelligenceConfidence: ins.Confidence.Score,
		HasOrganizer:           event.Organizer != "",
		HasSourceURL:           event.SourceURL != "",
	}
	actionType := recommend.TypeFor(opp.Urgency.Level, opp.Confidence)

	return recommend.Recommendation{
		ID:         uuid.NewString(),
		Type:       actionType,
		Priority:   recommend.Priority(pctx, actionType),
		Confidence: ins.Confidence.Score,
		Title:      titleFor(actionType, event.Title),
		Description: fmt.Sprintf("%s scored %.2f overall with %s estimated ROI.",
			event.Title, opp.OverallScore, opp.ROIEstimate),
		Why: fmt.Sprintf("ICP match %.2f, attendee quality %.2f, urgency %s.",
			opp.ICPMatchScore, opp.AttendeeQualityScore, opp.Urgency.Level),
		When:            opp.Urgency.RecommendedAction,
		How:             howByType[actionType],
		ExpectedOutcome: "Qualified pipeline from an event aligned with the target customer profile.",
		EventID:         event.ID,
	}, true
}

// titleFor prefixes the event title by action type.
func titleFor(actionType recommend.ActionType, eventTitle string) string {
	switch actionType {
	case recommend.ActionImmediate:
		return "Act now: " + eventTitle
	case recommend.ActionResearch:
		return "Research: " + eventTitle
	default:
		return "Plan for: " + eventTitle
	}
}

// trendRecommendations emits one research recommendation per validated topic
// that is rising and whose period change tested significant. Trend items are
// always research type; the research penalty keeps them below comparable
// event actions.
func trendRecommendations(validated []models.ValidatedTopic, sigByTopic map[string]*significance.Result) []recommend.Recommendation {
	if len(sigByTopic) == 0 {
		return nil
	}

	var recs []recommend.Recommendation
	for i := range validated {
		vt := &validated[i]
		if vt.GrowthTrajectory != models.TrajectoryRising {
			continue
		}
		res, ok := sigByTopic[strings.ToLower(strings.TrimSpace(vt.Topic))]
		if !ok || !res.IsSignificant {
			continue
		}

		relevance := 0.5
		if vt.RelevanceScore != nil {
			relevance = *vt.RelevanceScore
		}
		pctx := recommend.PriorityContext{
			Urgency:                vt.Momentum,
			Impact:                 res.SignificanceScore,
			Relevance:              relevance,
			DataCompleteness:       vt.ValidationScore,
			IntelligenceConfidence: res.SignificanceScore,
		}

		recs = append(recs, recommend.Recommendation{
			ID:         uuid.NewString(),
			Type:       recommend.ActionResearch,
			Priority:   recommend.Priority(pctx, recommend.ActionResearch),
			Confidence: res.SignificanceScore,
			Title:      fmt.Sprintf("Monitor rising trend: %s", vt.Topic),
			Description: fmt.Sprintf("%q appears in %d events this period and the change is statistically significant (p=%.4f, %s).",
				vt.Topic, vt.MentionCount, res.PValue, res.Strength),
			Why:             fmt.Sprintf("Momentum %.2f with validation score %.2f against the literal event corpus.", vt.Momentum, vt.ValidationScore),
			When:            "Review within the current planning cycle.",
			How:             "Track mentions across the next reporting period and shortlist related events.",
			ExpectedOutcome: "Early positioning on a statistically confirmed trend.",
			TrendID:         vt.Topic,
		})
	}
	return recs
}
