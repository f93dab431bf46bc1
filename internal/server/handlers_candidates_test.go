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

func TestHandleGetCandidate_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/candidates/not-a-uuid", nil)
	req.SetPathValue("candidateId", "not-a-uuid")
	w := httptest.NewRecorder()

	s.handleGetCandidate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp["error"], "Invalid candidate ID")
}

func TestHandleCreateCandidate_InvalidJSON(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/api/candidates", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()

	s.handleCreateCandidate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCreateCandidate_MissingFields(t *testing.T) {
	s := newTestServer()

	body, _ := json.Marshal(map[string]any{"name": "No Email"})
	req := httptest.NewRequest(http.MethodPost, "/api/candidates", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	s.handleCreateCandidate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Validation failed")
}

func TestHandleUpdateCandidate_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodPut, "/api/candidates/xyz", bytes.NewBufferString("{}"))
	req.SetPathValue("candidateId", "xyz")
	w := httptest.NewRecorder()

	s.handleUpdateCandidate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDeleteCandidate_InvalidID(t *testing.T) {
	s := newTestServer()

	req := httptest.NewRequest(http.MethodDelete, "/api/candidates/xyz", nil)
	req.SetPathValue("candidateId", "xyz")
	w := httptest.NewRecorder()

	s.handleDeleteCandidate(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseQueryInt(t *testing.T) {
	mkReq := func(query string) *http.Request {
		return httptest.NewRequest(http.MethodGet, "/api/candidates"+query, nil)
	}

	assert.Equal(t, 50, parseQueryInt(mkReq(""), "limit", 50, 100))
	assert.Equal(t, 20, parseQueryInt(mkReq("?limit=20"), "limit", 50, 100))
	assert.Equal(t, 100, parseQueryInt(mkReq("?limit=5000"), "limit", 50, 100))
	assert.Equal(t, 50, parseQueryInt(mkReq("?limit=-3"), "limit", 50, 100))
	assert.Equal(t, 50, parseQueryInt(mkReq("?limit=abc"), "limit", 50, 100))
	// maxValue 0 means uncapped
	assert.Equal(t, 5000, parseQueryInt(mkReq("?offset=5000"), "offset", 0, 0))
}
