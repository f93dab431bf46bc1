package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/db"
	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/matching"
	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/types"
)

// SuitableJobsResponse represents the response for ranking jobs against a candidate
type SuitableJobsResponse struct {
	Candidate    types.CandidateSummary `json:"candidate"`
	SuitableJobs []matching.RankedJob   `json:"suitableJobs"`
	TotalJobs    int                    `json:"totalJobs"`
}

// SuitableCandidatesResponse represents the response for ranking candidates against a job
type SuitableCandidatesResponse struct {
	Job                types.JobSummary           `json:"job"`
	SuitableCandidates []matching.RankedCandidate `json:"suitableCandidates"`
	TotalCandidates    int                        `json:"totalCandidates"`
}

// handleSuitableJobs ranks all jobs against one candidate
func (s *Server) handleSuitableJobs(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("candidateId"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	opts, ok := s.parseMatchOptions(w, r)
	if !ok {
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		notFound := &ErrCandidateNotFound{CandidateID: candidateID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	// Ranking needs the full pool, not a page
	jobs, _, err := s.db.ListJobs(r.Context(), db.ListJobsOptions{})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	ranking, err := matching.RankJobs(candidate, jobs, opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Ranking failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, SuitableJobsResponse{
		Candidate:    candidate.Summary(),
		SuitableJobs: ranking.Results,
		TotalJobs:    ranking.Considered,
	})
}

// handleSuitableCandidates ranks all candidates against one job
func (s *Server) handleSuitableCandidates(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("jobId"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	opts, ok := s.parseMatchOptions(w, r)
	if !ok {
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		notFound := &ErrJobNotFound{JobID: jobID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	candidates, _, err := s.db.ListCandidates(r.Context(), db.ListCandidatesOptions{})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	ranking, err := matching.RankCandidates(job, candidates, opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Ranking failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, SuitableCandidatesResponse{
		Job:                job.Summary(),
		SuitableCandidates: ranking.Results,
		TotalCandidates:    ranking.Considered,
	})
}

// parseMatchOptions reads the limit query parameter and the optional
// preferences body into ranking options. An all-equal preference profile
// switches aggregation to the arithmetic mean. Writes the error response
// and returns ok=false when the request is malformed.
func (s *Server) parseMatchOptions(w http.ResponseWriter, r *http.Request) (matching.Options, bool) {
	opts := matching.Options{
		Weights: types.DefaultMatchWeights(),
		Limit:   parseQueryInt(r, "limit", matching.DefaultLimit, 0),
	}

	if r.Method != http.MethodPost || r.Body == nil {
		return opts, true
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return opts, false
	}
	if len(body) == 0 {
		return opts, true
	}

	var req types.MatchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return opts, false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return opts, false
	}
	if req.Preferences == nil {
		return opts, true
	}

	weights := req.Preferences.Weights()
	if !weights.Valid() {
		invalid := &ErrInvalidWeights{}
		s.errorResponse(w, HTTPStatus(invalid), invalid.Error())
		return opts, false
	}

	opts.Weights = weights
	opts.UseMean = weights.Equal()
	return opts, true
}
