//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/types"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Clean up test data before each test
	_, _ = db.pool.Exec(ctx, "DELETE FROM candidates WHERE email LIKE '%@test.example.com'")
	_, _ = db.pool.Exec(ctx, "DELETE FROM jobs WHERE title LIKE 'Test Job %'")

	return db
}

func TestIntegration_CreateAndGetCandidate(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	created, err := db.CreateCandidate(ctx, &CandidateCreateInput{
		Name:   "Test Candidate Alpha",
		Email:  "alpha@test.example.com",
		Phone:  "+91-9000000001",
		Skills: []string{"AutoCAD", "Revit"},
		Experience: []types.ExperienceEntry{
			{Position: "Architect", Start: "2018", End: "2022"},
		},
		PreferredLocations: []types.PreferredLocation{
			{City: "Bangalore", State: "Karnataka", Country: "India"},
		},
	})
	if err != nil {
		t.Fatalf("CreateCandidate failed: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("Expected generated candidate ID")
	}
	if created.Name != "Test Candidate Alpha" {
		t.Errorf("Expected name 'Test Candidate Alpha', got %q", created.Name)
	}
	if len(created.Skills) != 2 {
		t.Errorf("Expected 2 skills, got %d", len(created.Skills))
	}

	retrieved, err := db.GetCandidate(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCandidate failed: %v", err)
	}
	if retrieved == nil {
		t.Fatal("Expected candidate, got nil")
	}
	if retrieved.Email != created.Email {
		t.Errorf("Expected email %q, got %q", created.Email, retrieved.Email)
	}
	if len(retrieved.Experience) != 1 || retrieved.Experience[0].Position != "Architect" {
		t.Errorf("Experience did not round-trip: %+v", retrieved.Experience)
	}
	if len(retrieved.PreferredLocations) != 1 || retrieved.PreferredLocations[0].City != "Bangalore" {
		t.Errorf("Preferred locations did not round-trip: %+v", retrieved.PreferredLocations)
	}

	// Non-existent ID should return nil, nil
	missing, err := db.GetCandidate(ctx, uuid.New())
	if err != nil {
		t.Fatalf("GetCandidate (non-existent) failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for non-existent candidate, got %+v", missing)
	}
}

func TestIntegration_ListCandidatesSkillFilter(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	_, err := db.CreateCandidate(ctx, &CandidateCreateInput{
		Name:   "Test Candidate Beta",
		Email:  "beta@test.example.com",
		Skills: []string{"SketchUp", "Enscape"},
	})
	if err != nil {
		t.Fatalf("CreateCandidate failed: %v", err)
	}
	_, err = db.CreateCandidate(ctx, &CandidateCreateInput{
		Name:   "Test Candidate Gamma",
		Email:  "gamma@test.example.com",
		Skills: []string{"Cooking"},
	})
	if err != nil {
		t.Fatalf("CreateCandidate failed: %v", err)
	}

	// Skill filter is a case-insensitive substring match
	candidates, total, err := db.ListCandidates(ctx, ListCandidatesOptions{Skill: "sketchup"})
	if err != nil {
		t.Fatalf("ListCandidates failed: %v", err)
	}
	if total != 1 {
		t.Errorf("Expected total 1, got %d", total)
	}
	if len(candidates) != 1 || candidates[0].Name != "Test Candidate Beta" {
		t.Errorf("Expected only Beta, got %+v", candidates)
	}

	// Paging: limit 1 still reports the full total
	_, total, err = db.ListCandidates(ctx, ListCandidatesOptions{Limit: 1})
	if err != nil {
		t.Fatalf("ListCandidates (paged) failed: %v", err)
	}
	if total < 2 {
		t.Errorf("Expected total >= 2, got %d", total)
	}
}

func TestIntegration_UpdateAndDeleteCandidate(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	created, err := db.CreateCandidate(ctx, &CandidateCreateInput{
		Name:   "Test Candidate Delta",
		Email:  "delta@test.example.com",
		Skills: []string{"AutoCAD"},
	})
	if err != nil {
		t.Fatalf("CreateCandidate failed: %v", err)
	}

	created.Skills = []string{"AutoCAD", "Lumion"}
	created.Phone = "+91-9000000002"
	updated, err := db.UpdateCandidate(ctx, created)
	if err != nil {
		t.Fatalf("UpdateCandidate failed: %v", err)
	}
	if updated == nil {
		t.Fatal("Expected updated candidate, got nil")
	}
	if len(updated.Skills) != 2 {
		t.Errorf("Expected 2 skills after update, got %d", len(updated.Skills))
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) && !updated.UpdatedAt.Equal(updated.CreatedAt) {
		t.Errorf("Expected updated_at >= created_at")
	}

	if err := db.DeleteCandidate(ctx, created.ID); err != nil {
		t.Fatalf("DeleteCandidate failed: %v", err)
	}
	gone, err := db.GetCandidate(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetCandidate after delete failed: %v", err)
	}
	if gone != nil {
		t.Errorf("Expected candidate to be deleted, got %+v", gone)
	}

	// Updating a deleted candidate returns nil, nil
	missing, err := db.UpdateCandidate(ctx, created)
	if err != nil {
		t.Fatalf("UpdateCandidate (deleted) failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil updating a deleted candidate, got %+v", missing)
	}
}
