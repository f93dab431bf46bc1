//go:build integration

package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/db"
	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/server/ratelimit"
	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/types"
)

// setupIntegrationTestServer sets up a server connected to a real DB
func setupIntegrationTestServer(t *testing.T) *Server {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	database, err := db.Connect(ctx, dsn)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to DB: %v", err)
	}

	// Ranking assertions need a clean pool
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()
	_, _ = pool.Exec(ctx, "TRUNCATE candidates, jobs")

	return &Server{
		db:          database,
		rateLimiter: ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
	}
}

func TestSuitableJobs_Integration(t *testing.T) {
	s := setupIntegrationTestServer(t)
	defer s.db.Close()
	ctx := context.Background()

	candidate, err := s.db.CreateCandidate(ctx, &db.CandidateCreateInput{
		Name:   "Asha Rao",
		Email:  "asha.rao@test.example.com",
		Skills: []string{"AutoCAD", "SketchUp"},
		Experience: []types.ExperienceEntry{
			{Position: "Architect", Start: "2018", End: "2022"},
		},
		PreferredLocations: []types.PreferredLocation{
			{City: "Bangalore", State: "Karnataka", Country: "India"},
		},
	})
	require.NoError(t, err)

	strong, err := s.db.CreateJob(ctx, &db.JobCreateInput{
		Title:       "Senior Architect",
		Description: "Architect role needing autocad drawings",
		Skills:      []string{"autocad", "Enscape"},
		Experience:  4,
		Location:    "Bangalore, Karnataka, India",
	})
	require.NoError(t, err)

	weak, err := s.db.CreateJob(ctx, &db.JobCreateInput{
		Title:       "Pastry Chef",
		Description: "Bake croissants",
		Skills:      []string{"baking"},
		Experience:  2,
		Location:    "Paris, France",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet,
		"/api/candidates/"+candidate.ID.String()+"/suitable-jobs", nil)
	req.SetPathValue("candidateId", candidate.ID.String())
	w := httptest.NewRecorder()

	s.handleSuitableJobs(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SuitableJobsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, candidate.ID, resp.Candidate.ID)
	assert.Equal(t, 2, resp.TotalJobs)
	require.Len(t, resp.SuitableJobs, 2)
	assert.Equal(t, strong.ID, resp.SuitableJobs[0].Job.ID)
	assert.Equal(t, weak.ID, resp.SuitableJobs[1].Job.ID)
	assert.Greater(t, resp.SuitableJobs[0].Score, resp.SuitableJobs[1].Score)
	assert.NotEmpty(t, resp.SuitableJobs[0].MatchDetails)
	require.NotNil(t, resp.SuitableJobs[0].IndividualScores)
	assert.Greater(t, resp.SuitableJobs[0].IndividualScores.Skills, 0.0)
}

func TestSuitableJobs_NotFound(t *testing.T) {
	s := setupIntegrationTestServer(t)
	defer s.db.Close()

	missing := "00000000-0000-0000-0000-000000000001"
	req := httptest.NewRequest(http.MethodGet, "/api/candidates/"+missing+"/suitable-jobs", nil)
	req.SetPathValue("candidateId", missing)
	w := httptest.NewRecorder()

	s.handleSuitableJobs(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSuitableCandidates_Integration(t *testing.T) {
	s := setupIntegrationTestServer(t)
	defer s.db.Close()
	ctx := context.Background()

	job, err := s.db.CreateJob(ctx, &db.JobCreateInput{
		Title:       "Interior Designer",
		Description: "Interior design with sketchup renders",
		Skills:      []string{"SketchUp", "Lumion"},
		Experience:  3,
		Location:    "Mumbai, Maharashtra, India",
	})
	require.NoError(t, err)

	fit, err := s.db.CreateCandidate(ctx, &db.CandidateCreateInput{
		Name:   "Ravi Kumar",
		Email:  "ravi.kumar@test.example.com",
		Skills: []string{"sketchup", "Lumion"},
		Experience: []types.ExperienceEntry{
			{Position: "Interior Designer", Start: "2019", End: "2023"},
		},
		PreferredLocations: []types.PreferredLocation{
			{City: "Mumbai", State: "Maharashtra", Country: "India"},
		},
	})
	require.NoError(t, err)

	_, err = s.db.CreateCandidate(ctx, &db.CandidateCreateInput{
		Name:   "Meera Iyer",
		Email:  "meera.iyer@test.example.com",
		Skills: []string{"Cooking"},
	})
	require.NoError(t, err)

	body, _ := json.Marshal(types.MatchRequest{
		Preferences: &types.MatchPreferences{
			SkillsVsDescription:     50,
			ExperienceVsDescription: 10,
			YearsOfExperience:       20,
			Location:                20,
		},
	})
	req := httptest.NewRequest(http.MethodPost,
		"/api/jobs/"+job.ID.String()+"/suitable-candidates", bytes.NewBuffer(body))
	req.SetPathValue("jobId", job.ID.String())
	w := httptest.NewRecorder()

	s.handleSuitableCandidates(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp SuitableCandidatesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, job.ID, resp.Job.ID)
	assert.Equal(t, 2, resp.TotalCandidates)
	require.NotEmpty(t, resp.SuitableCandidates)
	assert.Equal(t, fit.ID, resp.SuitableCandidates[0].Candidate.ID)
}
