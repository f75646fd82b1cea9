// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package insight

import (
	"math"
	"time"

	"github.com/tomtom215/eventscout/internal/models"
	"github.com/tomtom215/eventscout/internal/opportunity"
)

// neutral is the documented default for any sub-score whose input is absent.
const neutral = 0.5

// RelevanceFactor breaks down how well the event fits the profile.
type RelevanceFactor struct {
	Score             float64 `json:"score"`
	ICPMatch          float64 `json:"icp_match"`
	IndustryAlignment float64 `json:"industry_alignment"`
	UserProfileMatch  float64 `json:"user_profile_match"`
}

// ImpactFactor breaks down the expected business impact.
type ImpactFactor struct {
	Score                float64 `json:"score"`
	BusinessValue        float64 `json:"business_value"`
	ROIScore             float64 `json:"roi_score"`
	MarketSize           float64 `json:"market_size"`
	CompetitiveAdvantage float64 `json:"competitive_advantage"`
}

// UrgencyFactor breaks down time pressure.
type UrgencyFactor struct {
	Score             float64 `json:"score"`
	TimeSensitivity   float64 `json:"time_sensitivity"`
	DeadlineProximity float64 `json:"deadline_proximity"`
	MarketTiming      float64 `json:"market_timing"`
}

// ConfidenceFactor breaks down how much the insight can be trusted.
type ConfidenceFactor struct {
	Score                   float64 `json:"score"`
	DataQuality             float64 `json:"data_quality"`
	StatisticalSignificance float64 `json:"statistical_significance"`
	SourceReliability       float64 `json:"source_reliability"`
}

// relevanceFactor computes profile fit. With no profile every sub-score is
// the neutral 0.5.
func relevanceFactor(event *models.Event, opp *opportunity.Score, profile *models.Profile) RelevanceFactor {
	if profile == nil {
		return RelevanceFactor{
			Score:             neutral,
			ICPMatch:          neutral,
			IndustryAlignment: neutral,
			UserProfileMatch:  neutral,
		}
	}

	icp := opportunity.ICPMatch(event, profile)
	if opp != nil {
		icp = opp.ICPMatchScore
	}

	industry := industryAlignment(event, profile)
	userMatch := userProfileMatch(event, profile)

	return RelevanceFactor{
		Score:             clamp01(icp*0.5 + industry*0.3 + userMatch*0.2),
		ICPMatch:          icp,
		IndustryAlignment: industry,
		UserProfileMatch:  userMatch,
	}
}

// industryAlignment is the fraction of the profile's industry terms found in
// the event's core text.
func industryAlignment(event *models.Event, profile *models.Profile) float64 {
	if !profile.HasIndustryTerms() {
		return neutral
	}
	return models.TermMatchRatio(event.SearchText(), profile.IndustryTerms)
}

// userProfileMatch applies the same industry-term containment as
// industryAlignment. The two are kept as separate sub-scores on purpose:
// they carry different weights (0.3 vs 0.2) in the relevance formula, and
// collapsing them would change the factor's weighting.
func userProfileMatch(event *models.Event, profile *models.Profile) float64 {
	if !profile.HasIndustryTerms() {
		return neutral
	}
	return models.TermMatchRatio(event.SearchText(), profile.IndustryTerms)
}

// roiScores maps the coarse ROI classification onto a sub-score.
var roiScores = map[opportunity.ROIEstimate]float64{
	opportunity.ROIHigh:    0.9,
	opportunity.ROIMedium:  0.6,
	opportunity.ROILow:     0.3,
	opportunity.ROIUnknown: 0.5,
}

// impactFactor computes expected business impact.
func impactFactor(event *models.Event, opp *opportunity.Score) ImpactFactor {
	businessValue := neutral
	roi := roiScores[opportunity.ROIUnknown]
	if opp != nil {
		businessValue = opp.OverallScore
		if mapped, ok := roiScores[opp.ROIEstimate]; ok {
			roi = mapped
		}
	}

	market := marketSize(event)
	advantage := competitiveAdvantage(event)

	return ImpactFactor{
		Score:                clamp01(businessValue*0.4 + roi*0.3 + market*0.2 + advantage*0.1),
		BusinessValue:        businessValue,
		ROIScore:             roi,
		MarketSize:           market,
		CompetitiveAdvantage: advantage,
	}
}

// marketSize starts neutral and grows with sponsor tiers, a large speaker
// lineup and sponsor strategic significance, capped at 1.
func marketSize(event *models.Event) float64 {
	size := neutral
	size += math.Min(float64(event.TieredSponsorCount())*0.1, 0.3)
	if len(event.Speakers) > 10 {
		size += 0.1
	}
	size += 0.1 * sponsorStrategicSignificance(event)
	return math.Min(1, size)
}

// competitiveAdvantage reads sponsor strategic significance when tiers are
// known, otherwise falls back to 0.6 for any sponsored event and 0.5 for an
// unsponsored one.
func competitiveAdvantage(event *models.Event) float64 {
	if event.TieredSponsorCount() > 0 {
		return sponsorStrategicSignificance(event)
	}
	if len(event.Sponsors) > 0 {
		return 0.6
	}
	return neutral
}

// sponsorStrategicSignificance is the fraction of sponsors carrying a tier
// level, 0 when the event has no sponsors.
func sponsorStrategicSignificance(event *models.Event) float64 {
	if len(event.Sponsors) == 0 {
		return 0
	}
	return float64(event.TieredSponsorCount()) / float64(len(event.Sponsors))
}

// urgencyFactor computes time pressure. With an opportunity score available
// its urgency output drives all three sub-scores; without one, coarse
// days-until-event buckets computed from the event date stand in, and with no
// date at all everything stays neutral.
func urgencyFactor(event *models.Event, opp *opportunity.Score, now time.Time) UrgencyFactor {
	timeSensitivity := neutral
	deadlineProximity := neutral
	marketTiming := neutral

	switch {
	case opp != nil:
		timeSensitivity = opp.UrgencyScore
		marketTiming = marketTimingFor(opp.Urgency.Level)
		if days := opp.Urgency.DaysUntilEvent; days != nil {
			deadlineProximity = deadlineProximityFor(*days)
		}
	case !event.StartsAt.IsZero():
		days := int(math.Floor(event.StartsAt.Sub(now).Hours() / 24))
		timeSensitivity = timeSensitivityFor(days)
		deadlineProximity = deadlineProximityFor(days)
	}

	return UrgencyFactor{
		Score:             clamp01(timeSensitivity*0.5 + deadlineProximity*0.3 + marketTiming*0.2),
		TimeSensitivity:   timeSensitivity,
		DeadlineProximity: deadlineProximity,
		MarketTiming:      marketTiming,
	}
}

// timeSensitivityFor is the days-until-event fallback ramp.
func timeSensitivityFor(days int) float64 {
	switch {
	case days <= 30:
		return 0.8
	case days <= 90:
		return 0.6
	default:
		return neutral
	}
}

// deadlineProximityFor buckets days until the event.
func deadlineProximityFor(days int) float64 {
	switch {
	case days <= 7:
		return 1.0
	case days <= 30:
		return 0.8
	case days <= 90:
		return 0.6
	default:
		return 0.4
	}
}

// marketTimingFor maps the urgency level onto a timing sub-score.
func marketTimingFor(level opportunity.Level) float64 {
	switch level {
	case opportunity.LevelCritical:
		return 1.0
	case opportunity.LevelHigh:
		return 0.8
	case opportunity.LevelMedium:
		return 0.6
	case opportunity.LevelLow:
		return 0.4
	default:
		return neutral
	}
}

// confidenceFactor computes trust in the insight from record completeness,
// statistical backing and source reliability.
func confidenceFactor(event *models.Event, significanceScore, genericConfidence *float64) ConfidenceFactor {
	dataQuality := opportunity.Completeness(event)

	statistical := neutral
	switch {
	case significanceScore != nil:
		statistical = clamp01(*significanceScore)
	case genericConfidence != nil:
		statistical = clamp01(*genericConfidence)
	}

	reliability := sourceReliability(event)

	return ConfidenceFactor{
		Score:                   clamp01(dataQuality*0.4 + statistical*0.4 + reliability*0.2),
		DataQuality:             dataQuality,
		StatisticalSignificance: statistical,
		SourceReliability:       reliability,
	}
}

// sourceReliability starts from the verification status, averages in the
// collector's confidence when known, and credits a recorded source URL.
func sourceReliability(event *models.Event) float64 {
	reliability := neutral
	switch event.VerificationStatus {
	case models.VerificationVerified:
		reliability = 0.9
	case models.VerificationOutdated:
		reliability = 0.3
	}

	if event.Confidence != nil {
		reliability = (reliability + clamp01(*event.Confidence)) / 2
	}
	if event.SourceURL != "" {
		reliability += 0.1
	}
	return math.Min(1, reliability)
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
