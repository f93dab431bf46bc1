//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Job represents a job posting candidates are matched against.
type Job struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Skills      []string  `json:"skills,omitempty"`
	Experience  int       `json:"experience"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty"`
}

// Summary returns the public-safe projection of a job attached to
// ranked match results.
func (j *Job) Summary() JobSummary {
	return JobSummary{
		ID:         j.ID,
		Title:      j.Title,
		Skills:     j.Skills,
		Experience: j.Experience,
		Location:   j.Location,
	}
}

// JobSummary is the projection of a job embedded in match results.
type JobSummary struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Skills     []string  `json:"skills,omitempty"`
	Experience int       `json:"experience"`
	Location   string    `json:"location,omitempty"`
}
