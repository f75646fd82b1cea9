// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package insight

// Default factor weights.
const (
	defaultRelevanceWeight  = 0.3
	defaultImpactWeight     = 0.3
	defaultUrgencyWeight    = 0.2
	defaultConfidenceWeight = 0.2
)

// Weights defines the relative contribution of each insight factor. Weights
// are normalized before use, so callers don't need to make them sum to 1.
type Weights struct {
	// Relevance weighs profile fit.
	Relevance float64 `json:"relevance"`

	// Impact weighs business value and ROI.
	Impact float64 `json:"impact"`

	// Urgency weighs time pressure.
	Urgency float64 `json:"urgency"`

	// Confidence weighs data quality and statistical backing.
	Confidence float64 `json:"confidence"`
}

// DefaultWeights returns the standard factor weighting.
func DefaultWeights() Weights {
	return Weights{
		Relevance:  defaultRelevanceWeight,
		Impact:     defaultImpactWeight,
		Urgency:    defaultUrgencyWeight,
		Confidence: defaultConfidenceWeight,
	}
}

// Resolve merges a caller's partial override into the defaults and
// normalizes the result. Zero or negative entries in the override inherit
// the default for that factor; a nil override returns the normalized
// defaults.
func Resolve(override *Weights) Weights {
	w := DefaultWeights()
	if override != nil {
		if override.Relevance > 0 {
			w.Relevance = override.Relevance
		}
		if override.Impact > 0 {
			w.Impact = override.Impact
		}
		if override.Urgency > 0 {
			w.Urgency = override.Urgency
		}
		if override.Confidence > 0 {
			w.Confidence = override.Confidence
		}
	}
	return w.Normalize()
}

// Normalize returns a copy whose components sum to 1. An all-zero set
// normalizes to equal weights.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) Normalize() Weights {
	sum := w.Relevance + w.Impact + w.Urgency + w.Confidence
	if sum == 0 {
		const equal = 0.25
		return Weights{Relevance: equal, Impact: equal, Urgency: equal, Confidence: equal}
	}
	return Weights{
		Relevance:  w.Relevance / sum,
		Impact:     w.Impact / sum,
		Urgency:    w.Urgency / sum,
		Confidence: w.Confidence / sum,
	}
}

// Sum returns the total of all components.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) Sum() float64 {
	return w.Relevance + w.Impact + w.Urgency + w.Confidence
}
