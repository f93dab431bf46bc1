package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/db"
	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/schemas"
	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/types"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Validate and bulk-insert candidates and jobs from JSON files",
	Long: `Validates candidate and job seed files against their JSON Schemas and
inserts the records into the database. Either file may be omitted.`,
	RunE: runSeed,
}

var (
	seedCandidatesPath string
	seedJobsPath       string
)

func init() {
	seedCmd.Flags().StringVarP(&seedCandidatesPath, "candidates", "c", "", "Path to candidates JSON file")
	seedCmd.Flags().StringVarP(&seedJobsPath, "jobs", "j", "", "Path to jobs JSON file")
	rootCmd.AddCommand(seedCmd)
}

func runSeed(_ *cobra.Command, _ []string) error {
	if seedCandidatesPath == "" && seedJobsPath == "" {
		return fmt.Errorf("at least one of --candidates or --jobs is required")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if seedCandidatesPath != "" {
		n, err := seedCandidates(ctx, database, seedCandidatesPath)
		if err != nil {
			return err
		}
		fmt.Printf("Inserted %d candidates from %s\n", n, seedCandidatesPath)
	}

	if seedJobsPath != "" {
		n, err := seedJobs(ctx, database, seedJobsPath)
		if err != nil {
			return err
		}
		fmt.Printf("Inserted %d jobs from %s\n", n, seedJobsPath)
	}

	return nil
}

func seedCandidates(ctx context.Context, database *db.DB, path string) (int, error) {
	schemaPath := schemas.ResolveSchemaPath(schemas.CandidateSchemaFile)
	if schemaPath == "" {
		return 0, fmt.Errorf("candidate schema not found (looked for %s)", schemas.CandidateSchemaFile)
	}
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		return 0, fmt.Errorf("candidates file failed schema validation: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}

	var records []types.CreateCandidateRequest
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("failed to unmarshal candidates JSON: %w", err)
	}

	for i, rec := range records {
		_, err := database.CreateCandidate(ctx, &db.CandidateCreateInput{
			Name:               rec.Name,
			Email:              rec.Email,
			Phone:              rec.Phone,
			Skills:             rec.Skills,
			Experience:         rec.Experience,
			PreferredLocations: rec.PreferredLocations,
		})
		if err != nil {
			return i, fmt.Errorf("failed to insert candidate %d (%s): %w", i, rec.Email, err)
		}
	}
	return len(records), nil
}

func seedJobs(ctx context.Context, database *db.DB, path string) (int, error) {
	schemaPath := schemas.ResolveSchemaPath(schemas.JobSchemaFile)
	if schemaPath == "" {
		return 0, fmt.Errorf("job schema not found (looked for %s)", schemas.JobSchemaFile)
	}
	if err := schemas.ValidateJSON(schemaPath, path); err != nil {
		return 0, fmt.Errorf("jobs file failed schema validation: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read jobs file %s: %w", path, err)
	}

	var records []types.CreateJobRequest
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("failed to unmarshal jobs JSON: %w", err)
	}

	for i, rec := range records {
		_, err := database.CreateJob(ctx, &db.JobCreateInput{
			Title:       rec.Title,
			Description: rec.Description,
			Skills:      rec.Skills,
			Experience:  rec.Experience,
			Location:    rec.Location,
		})
		if err != nil {
			return i, fmt.Errorf("failed to insert job %d (%s): %w", i, rec.Title, err)
		}
	}
	return len(records), nil
}
