// EventScout - Event Intelligence and Opportunity Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/eventscout

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Sponsor is an event sponsor. Collected data carries sponsors in two wire
// forms: a bare name string ("Acme Corp") or an object with a tier level
// ({"name": "Acme Corp", "level": "gold"}). Both unmarshal into this type;
// a name-only sponsor has an empty Level.
type Sponsor struct {
	// Name is the sponsor name.
	Name string `json:"name"`

	// Level is the sponsorship tier (gold, silver, ...). Empty when the
	// source listed only a name.
	Level string `json:"level,omitempty"`
}

// sponsorObject mirrors the object wire form without the custom unmarshaler,
// avoiding infinite recursion in UnmarshalJSON.
type sponsorObject struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// UnmarshalJSON accepts either wire form.
func (s *Sponsor) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return fmt.Errorf("sponsor name: %w", err)
		}
		s.Name = name
		s.Level = ""
		return nil
	}

	var obj sponsorObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("sponsor object: %w", err)
	}
	s.Name = obj.Name
	s.Level = obj.Level
	return nil
}

// MarshalJSON emits the bare-string form for name-only sponsors and the
// object form for tiered ones, matching what the collectors produce.
func (s Sponsor) MarshalJSON() ([]byte, error) {
	if s.Level == "" {
		return json.Marshal(s.Name)
	}
	return json.Marshal(sponsorObject{Name: s.Name, Level: s.Level})
}
