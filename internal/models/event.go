// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package models

import (
	"strings"
	"time"
)

// VerificationStatus indicates how much the collection layer trusts an event record.
type VerificationStatus string

const (
	// VerificationVerified means the record was confirmed against the source.
	VerificationVerified VerificationStatus = "verified"

	// VerificationUnverified means the record has not been cross-checked.
	VerificationUnverified VerificationStatus = "unverified"

	// VerificationOutdated means the source has changed since collection.
	VerificationOutdated VerificationStatus = "outdated"
)

// Speaker is a speaker listed on an event page.
type Speaker struct {
	// Name is the speaker's full name.
	Name string `json:"name"`

	// Org is the speaker's organization, if listed.
	Org string `json:"org,omitempty"`

	// Title is the speaker's job title, if listed.
	Title string `json:"title,omitempty"`
}

// Event is a collected event record. It is immutable input to the scoring
// core; collection and persistence are owned by external systems.
type Event struct {
	// ID is the external store's identifier for this event.
	ID string `json:"id"`

	// Title is the event title.
	Title string `json:"title"`

	// Description is the event description, possibly empty.
	Description string `json:"description,omitempty"`

	// StartsAt is the event start time. The zero value means unknown.
	StartsAt time.Time `json:"starts_at,omitzero"`

	// City is the host city, if known.
	City string `json:"city,omitempty"`

	// Country is the host country, if known.
	Country string `json:"country,omitempty"`

	// Topics is the list of topic tags attached to the event.
	Topics []string `json:"topics,omitempty"`

	// Speakers is the listed speaker lineup.
	Speakers []Speaker `json:"speakers,omitempty"`

	// Sponsors is the listed sponsor set. Source data mixes bare names and
	// tiered entries; see Sponsor for the accepted wire forms.
	Sponsors []Sponsor `json:"sponsors,omitempty"`

	// ParticipatingOrgs lists organizations attending or exhibiting.
	ParticipatingOrgs []string `json:"participating_organizations,omitempty"`

	// Organizer is the organizing body, if known.
	Organizer string `json:"organizer,omitempty"`

	// SourceURL is the page the record was collected from.
	SourceURL string `json:"source_url,omitempty"`

	// DataCompleteness is the collector's 0-1 completeness estimate.
	// Nil means the collector did not compute one.
	DataCompleteness *float64 `json:"data_completeness,omitempty"`

	// Confidence is the collector's 0-1 confidence in the record.
	// Nil means unknown.
	Confidence *float64 `json:"confidence,omitempty"`

	// VerificationStatus is the collection layer's trust label.
	VerificationStatus VerificationStatus `json:"verification_status,omitempty"`
}

// SearchText returns the lowercased concatenation of title, description and
// topic tags. Term containment checks throughout the scoring core run against
// this string.
func (e *Event) SearchText() string {
	var b strings.Builder
	b.Grow(len(e.Title) + len(e.Description) + 32)
	b.WriteString(e.Title)
	b.WriteByte(' ')
	b.WriteString(e.Description)
	for _, t := range e.Topics {
		b.WriteByte(' ')
		b.WriteString(t)
	}
	return strings.ToLower(b.String())
}

// HasIdentity reports whether the record carries at least one identifying
// field. Records with no title, no description and no topics cannot be scored
// and are skipped by the pipeline rather than failing the batch.
func (e *Event) HasIdentity() bool {
	return e.Title != "" || e.Description != "" || len(e.Topics) > 0
}

// SponsorNames returns the sponsor names in listing order.
func (e *Event) SponsorNames() []string {
	if len(e.Sponsors) == 0 {
		return nil
	}
	names := make([]string, 0, len(e.Sponsors))
	for _, s := range e.Sponsors {
		names = append(names, s.Name)
	}
	return names
}

// SpeakerOrgs returns the distinct, non-empty speaker organizations in
// listing order.
func (e *Event) SpeakerOrgs() []string {
	if len(e.Speakers) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(e.Speakers))
	orgs := make([]string, 0, len(e.Speakers))
	for _, s := range e.Speakers {
		if s.Org == "" {
			continue
		}
		key := strings.ToLower(s.Org)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		orgs = append(orgs, s.Org)
	}
	return orgs
}

// TieredSponsorCount returns the number of sponsors that carry a tier level.
func (e *Event) TieredSponsorCount() int {
	n := 0
	for _, s := range e.Sponsors {
		if s.Level != "" {
			n++
		}
	}
	return n
}
