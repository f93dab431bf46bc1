package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/db"
	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/types"
)

// parseQueryInt parses an integer query parameter with a default and an optional cap
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// ListCandidatesResponse represents the response for listing candidates
type ListCandidatesResponse struct {
	Candidates []types.Candidate `json:"candidates"`
	Count      int               `json:"count"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
}

// handleCreateCandidate creates a new candidate
func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	candidate, err := s.db.CreateCandidate(r.Context(), &db.CandidateCreateInput{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		Skills:             req.Skills,
		Experience:         req.Experience,
		PreferredLocations: req.PreferredLocations,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, candidate)
}

// handleListCandidates lists candidates with optional skill filter and pagination
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	limit := parseQueryInt(r, "limit", 50, 100)
	offset := parseQueryInt(r, "offset", 0, 0)

	opts := db.ListCandidatesOptions{
		Skill:  r.URL.Query().Get("skill"),
		Limit:  limit,
		Offset: offset,
	}

	candidates, total, err := s.db.ListCandidates(r.Context(), opts)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidates == nil {
		candidates = []types.Candidate{}
	}

	s.jsonResponse(w, http.StatusOK, ListCandidatesResponse{
		Candidates: candidates,
		Count:      total,
		Limit:      limit,
		Offset:     offset,
	})
}

// handleGetCandidate retrieves a candidate by ID
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("candidateId"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
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

	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleUpdateCandidate replaces a candidate's mutable fields
func (s *Server) handleUpdateCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("candidateId"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var req types.UpdateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	updated, err := s.db.UpdateCandidate(r.Context(), &types.Candidate{
		ID:                 candidateID,
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		Skills:             req.Skills,
		Experience:         req.Experience,
		PreferredLocations: req.PreferredLocations,
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if updated == nil {
		notFound := &ErrCandidateNotFound{CandidateID: candidateID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteCandidate removes a candidate
func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("candidateId"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	if err := s.db.DeleteCandidate(r.Context(), candidateID); err != nil {
		if err.Error() == "candidate not found: "+candidateID.String() {
			notFound := &ErrCandidateNotFound{CandidateID: candidateID}
			s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
