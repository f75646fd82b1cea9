// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package insight

import (
	"math"
	"testing"
)

func TestResolve_Defaults(t *testing.T) {
	w := Resolve(nil)
	if math.Abs(w.Sum()-1) > 1e-9 {
		t.Errorf("Sum() = %v, want 1", w.Sum())
	}
	if w.Relevance != 0.3 || w.Impact != 0.3 || w.Urgency != 0.2 || w.Confidence != 0.2 {
		t.Errorf("Resolve(nil) = %+v, want 0.3/0.3/0.2/0.2", w)
	}
}

func TestResolve_PartialOverride(t *testing.T) {
	// Only relevance overridden: 0.6/0.3/0.2/0.2 renormalizes over 1.3.
	w := Resolve(&Weights{Relevance: 0.6})

	if math.Abs(w.Sum()-1) > 1e-9 {
		t.Errorf("Sum() = %v, want 1 within 1e-9", w.Sum())
	}
	if math.Abs(w.Relevance-0.6/1.3) > 1e-9 {
		t.Errorf("Relevance = %v, want %v", w.Relevance, 0.6/1.3)
	}
	if math.Abs(w.Impact-0.3/1.3) > 1e-9 {
		t.Errorf("Impact = %v, want %v", w.Impact, 0.3/1.3)
	}
}

func TestResolve_UnnormalizedOverride(t *testing.T) {
	// Wildly unnormalized caller weights still sum to 1 after resolution.
	w := Resolve(&Weights{Relevance: 10, Impact: 30, Urgency: 5, Confidence: 55})
	if math.Abs(w.Sum()-1) > 1e-9 {
		t.Errorf("Sum() = %v, want 1 within 1e-9", w.Sum())
	}
	if math.Abs(w.Confidence-0.55) > 1e-9 {
		t.Errorf("Confidence = %v, want 0.55", w.Confidence)
	}
}

func TestNormalize_AllZero(t *testing.T) {
	w := Weights{}.Normalize()
	if math.Abs(w.Sum()-1) > 1e-9 {
		t.Errorf("Sum() = %v, want 1", w.Sum())
	}
	if w.Relevance != 0.25 {
		t.Errorf("Relevance = %v, want equal split 0.25", w.Relevance)
	}
}

func TestResolve_NegativeEntriesInheritDefaults(t *testing.T) {
	w := Resolve(&Weights{Relevance: -5, Impact: 0.5})
	if math.Abs(w.Sum()-1) > 1e-9 {
		t.Errorf("Sum() = %v, want 1", w.Sum())
	}
	// Relevance fell back to its 0.3 default before normalization over 1.2.
	if math.Abs(w.Relevance-0.3/1.2) > 1e-9 {
		t.Errorf("Relevance = %v, want %v", w.Relevance, 0.3/1.2)
	}
}
