package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleGetJob_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/jobs/not-a-uuid", nil)
	req.SetPathValue("jobId", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetJob(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCreateJob_MissingTitle(t *testing.T) {
	s := newTestServer()

	body, _ := json.Marshal(map[string]any{"description": "no title here"})
	req := httptest.NewRequest(http.MethodPost, "/api/jobs", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	s.handleCreateJob(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Validation failed")
}

func TestHandleCreateJob_NegativeExperience(t *testing.T) {
	s := newTestServer()

	body, _ := json.Marshal(map[string]any{"title": "Architect", "experience": -2})
	req := httptest.NewRequest(http.MethodPost, "/api/jobs", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	s.handleCreateJob(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDeleteJob_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodDelete, "/api/jobs/xyz", nil)
	req.SetPathValue("jobId", "xyz")
	w := httptest.NewRecorder()

	s.handleDeleteJob(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
