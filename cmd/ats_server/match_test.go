package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/matching"
	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/types"
)

func TestParseWeights(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.MatchWeights
		wantErr bool
	}{
		{
			name:  "empty uses defaults",
			input: "",
			want:  types.DefaultMatchWeights(),
		},
		{
			name:  "explicit profile",
			input: "40,10,30,20",
			want:  types.MatchWeights{Skills: 40, Title: 10, YearsOfExperience: 30, Location: 20},
		},
		{
			name:  "whitespace tolerated",
			input: " 25, 25, 25, 25 ",
			want:  types.MatchWeights{Skills: 25, Title: 25, YearsOfExperience: 25, Location: 25},
		},
		{
			name:    "wrong arity",
			input:   "25,25,25",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			input:   "a,b,c,d",
			wantErr: true,
		},
		{
			name:    "negative weight",
			input:   "-1,25,30,20",
			wantErr: true,
		},
		{
			name:    "all zero",
			input:   "0,0,0,0",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWeights(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunMatch_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	jobPath := filepath.Join(dir, "job.json")
	job := types.Job{
		Title:       "Senior Architect",
		Description: "Architect role needing autocad drawings",
		Skills:      []string{"autocad", "Enscape"},
		Experience:  4,
		Location:    "Bangalore, Karnataka, India",
	}
	jobData, err := json.Marshal(job)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(jobPath, jobData, 0644))

	candidatesPath := filepath.Join(dir, "candidates.json")
	candidates := []types.Candidate{
		{
			Name:   "Strong Fit",
			Email:  "strong@example.com",
			Skills: []string{"AutoCAD", "SketchUp"},
			Experience: []types.ExperienceEntry{
				{Position: "Architect", Start: "2018", End: "2022"},
			},
			PreferredLocations: []types.PreferredLocation{
				{City: "Bangalore", State: "Karnataka", Country: "India"},
			},
		},
		{
			Name:   "Weak Fit",
			Email:  "weak@example.com",
			Skills: []string{"Cooking"},
		},
	}
	candidatesData, err := json.Marshal(candidates)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(candidatesPath, candidatesData, 0644))

	outPath := filepath.Join(dir, "out.json")

	matchJobPath = jobPath
	matchCandidatesPath = candidatesPath
	matchLimit = matching.DefaultLimit
	matchWeights = ""
	matchOutput = outPath

	require.NoError(t, runMatch(nil, nil))

	outData, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var result struct {
		SuitableCandidates []matching.RankedCandidate `json:"suitableCandidates"`
		TotalCandidates    int                        `json:"totalCandidates"`
	}
	require.NoError(t, json.Unmarshal(outData, &result))

	assert.Equal(t, 2, result.TotalCandidates)
	require.Len(t, result.SuitableCandidates, 2)
	assert.Equal(t, "Strong Fit", result.SuitableCandidates[0].Candidate.Name)
	assert.Greater(t, result.SuitableCandidates[0].Score, result.SuitableCandidates[1].Score)
}

func TestRunMatch_MissingFile(t *testing.T) {
	matchJobPath = "/nonexistent/job.json"
	matchCandidatesPath = "/nonexistent/candidates.json"
	matchOutput = ""

	err := runMatch(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read job file")
}
