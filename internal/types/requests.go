package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateCandidateRequest represents the request to create a candidate.
type CreateCandidateRequest struct {
	Name               string              `json:"name" validate:"required,min=1"`
	Email              string              `json:"email" validate:"required,email"`
	Phone              string              `json:"phone,omitempty"`
	Skills             []string            `json:"skills,omitempty"`
	Experience         []ExperienceEntry   `json:"experience,omitempty"`
	PreferredLocations []PreferredLocation `json:"preferredLocations,omitempty"`
}

// UpdateCandidateRequest represents the request to update a candidate.
// The same shape as creation; updates replace all mutable fields.
type UpdateCandidateRequest = CreateCandidateRequest

// CreateJobRequest represents the request to create a job listing.
type CreateJobRequest struct {
	Title       string   `json:"title" validate:"required,min=1"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Experience  int      `json:"experience" validate:"gte=0"`
	Location    string   `json:"location,omitempty"`
}

// UpdateJobRequest represents the request to update a job listing.
type UpdateJobRequest = CreateJobRequest

// MatchPreferences carries the caller-supplied per-dimension weight
// overrides for a ranking request. Each value is a 0-100 weight.
type MatchPreferences struct {
	SkillsVsDescription     float64 `json:"skillsVsDescription" validate:"gte=0,lte=100"`
	ExperienceVsDescription float64 `json:"experienceVsDescription" validate:"gte=0,lte=100"`
	YearsOfExperience       float64 `json:"yearsOfExperience" validate:"gte=0,lte=100"`
	Location                float64 `json:"location" validate:"gte=0,lte=100"`
}

// Weights converts the preferences to a MatchWeights profile.
func (p *MatchPreferences) Weights() MatchWeights {
	return MatchWeights{
		Skills:            p.SkillsVsDescription,
		Title:             p.ExperienceVsDescription,
		YearsOfExperience: p.YearsOfExperience,
		Location:          p.Location,
	}
}

// MatchRequest is the optional body of a suitable-candidates request.
type MatchRequest struct {
	Preferences *MatchPreferences `json:"preferences,omitempty"`
}

// Validate validates the CreateCandidateRequest using the validator.
func (r *CreateCandidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	if r.Preferences == nil {
		return nil
	}
	validate := validator.New()
	return validate.Struct(r.Preferences)
}
