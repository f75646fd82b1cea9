// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package models

import "strings"

// Profile captures a requester's interests as free-text term lists. Matching
// against events is case-insensitive substring containment, never fuzzy.
type Profile struct {
	// IndustryTerms describe the requester's industry ("legal tech", "compliance").
	IndustryTerms []string `json:"industry_terms,omitempty"`

	// ICPTerms describe the ideal customer profile ("general counsel", "fintech").
	ICPTerms []string `json:"icp_terms,omitempty"`

	// Competitors lists competitor names to watch for.
	Competitors []string `json:"competitors,omitempty"`
}

// HasICPTerms reports whether any ICP terms are set.
func (p *Profile) HasICPTerms() bool {
	return p != nil && len(p.ICPTerms) > 0
}

// HasIndustryTerms reports whether any industry terms are set.
func (p *Profile) HasIndustryTerms() bool {
	return p != nil && len(p.IndustryTerms) > 0
}

// ContainsAnyTerm reports whether any of terms appears in text. Both sides
// are compared lowercased; empty terms never match.
func ContainsAnyTerm(text string, terms []string) bool {
	if text == "" || len(terms) == 0 {
		return false
	}
	lower := strings.ToLower(text)
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t != "" && strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// TermMatchRatio returns the fraction of distinct terms found in text,
// in [0,1]. Zero terms yields 0.
func TermMatchRatio(text string, terms []string) float64 {
	if text == "" || len(terms) == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	matched := 0
	total := 0
	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		total++
		if strings.Contains(lower, t) {
			matched++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(matched) / float64(total)
}
