// Package types provides type definitions for structured data used throughout the ATS matching service.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Candidate represents an applicant tracked by the system.
// JSON field names follow the public API surface (camelCase).
type Candidate struct {
	ID                 uuid.UUID           `json:"id"`
	Name               string              `json:"name"`
	Email              string              `json:"email"`
	Phone              string              `json:"phone,omitempty"`
	Skills             []string            `json:"skills"`
	Experience         []ExperienceEntry   `json:"experience"`
	PreferredLocations []PreferredLocation `json:"preferredLocations"`
	CreatedAt          time.Time           `json:"createdAt,omitempty"`
	UpdatedAt          time.Time           `json:"updatedAt,omitempty"`
}

// ExperienceEntry represents one past position on a candidate's record.
// Start and End are either bare 4-digit years ("2018") or parseable
// calendar dates ("2018-03-01"); legacy records carry both formats.
type ExperienceEntry struct {
	Position string `json:"position"`
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
}

// PreferredLocation represents a location a candidate is open to.
// Any subset of the fields may be present.
type PreferredLocation struct {
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Country string `json:"country,omitempty"`
}

// Summary returns the public-safe projection of a candidate attached
// to ranked match results (identity fields only, no timestamps).
func (c *Candidate) Summary() CandidateSummary {
	return CandidateSummary{
		ID:     c.ID,
		Name:   c.Name,
		Email:  c.Email,
		Phone:  c.Phone,
		Skills: c.Skills,
	}
}

// CandidateSummary is the projection of a candidate embedded in match results.
type CandidateSummary struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Phone  string    `json:"phone,omitempty"`
	Skills []string  `json:"skills,omitempty"`
}
