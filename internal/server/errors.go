// Package server provides the HTTP REST API for the candidate-job matcher.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrCandidateNotFound indicates the candidate was not found
type ErrCandidateNotFound struct {
	CandidateID uuid.UUID
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("candidate not found: %s", e.CandidateID)
}

// ErrJobNotFound indicates the job was not found
type ErrJobNotFound struct {
	JobID uuid.UUID
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job not found: %s", e.JobID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrInvalidWeights indicates an unusable preference profile
type ErrInvalidWeights struct{}

func (e *ErrInvalidWeights) Error() string {
	return "preference weights must be non-negative with at least one positive"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrCandidateNotFound, *ErrJobNotFound:
		return http.StatusNotFound
	case *ErrValidation, *ErrInvalidWeights:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
