package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/matching"
	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank candidates against a job from JSON files",
	Long: `Deterministically ranks candidates from a JSON file against a single
job listing, printing ranked results as JSON. Runs the same scoring engine as
the suitable-candidates endpoint without needing a database.`,
	RunE: runMatch,
}

var (
	matchJobPath        string
	matchCandidatesPath string
	matchLimit          int
	matchWeights        string
	matchOutput         string
)

func init() {
	matchCmd.Flags().StringVarP(&matchJobPath, "job", "j", "", "Path to input job JSON file (required)")
	matchCmd.Flags().StringVarP(&matchCandidatesPath, "candidates", "c", "", "Path to input candidates JSON file (required)")
	matchCmd.Flags().IntVarP(&matchLimit, "limit", "n", matching.DefaultLimit, "Maximum number of ranked results")
	matchCmd.Flags().StringVarP(&matchWeights, "weights", "w", "", "Comma-separated weights: skills,title,years,location (default 25,25,30,20)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JSON file (default stdout)")

	if err := matchCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := matchCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	jobContent, err := os.ReadFile(matchJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job file %s: %w", matchJobPath, err)
	}
	var job types.Job
	if err := json.Unmarshal(jobContent, &job); err != nil {
		return fmt.Errorf("failed to unmarshal job JSON: %w", err)
	}

	candidatesContent, err := os.ReadFile(matchCandidatesPath)
	if err != nil {
		return fmt.Errorf("failed to read candidates file %s: %w", matchCandidatesPath, err)
	}
	var candidates []types.Candidate
	if err := json.Unmarshal(candidatesContent, &candidates); err != nil {
		return fmt.Errorf("failed to unmarshal candidates JSON: %w", err)
	}

	weights, err := parseWeights(matchWeights)
	if err != nil {
		return err
	}

	ranking, err := matching.RankCandidates(&job, candidates, matching.Options{
		Weights: weights,
		UseMean: weights.Equal(),
		Limit:   matchLimit,
	})
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	output := map[string]any{
		"job":                job.Summary(),
		"suitableCandidates": ranking.Results,
		"totalCandidates":    ranking.Considered,
	}
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if matchOutput == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(matchOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", matchOutput, err)
	}
	fmt.Printf("Wrote %d ranked candidates to %s\n", len(ranking.Results), matchOutput)
	return nil
}

// parseWeights parses a "skills,title,years,location" flag value. An empty
// value yields the default profile.
func parseWeights(s string) (types.MatchWeights, error) {
	if s == "" {
		return types.DefaultMatchWeights(), nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return types.MatchWeights{}, fmt.Errorf("weights must have exactly 4 comma-separated values, got %d", len(parts))
	}

	vals := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return types.MatchWeights{}, fmt.Errorf("invalid weight %q: %w", part, err)
		}
		vals[i] = v
	}

	weights := types.MatchWeights{
		Skills:            vals[0],
		Title:             vals[1],
		YearsOfExperience: vals[2],
		Location:          vals[3],
	}
	if !weights.Valid() {
		return types.MatchWeights{}, fmt.Errorf("weights must be non-negative with at least one positive")
	}
	return weights, nil
}
