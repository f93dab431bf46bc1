package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/types"
)

// CandidateCreateInput contains the fields accepted when creating a candidate
type CandidateCreateInput struct {
	Name               string
	Email              string
	Phone              string
	Skills             []string
	Experience         []types.ExperienceEntry
	PreferredLocations []types.PreferredLocation
}

const candidateColumns = `id, name, email, phone, skills, experience, preferred_locations, created_at, updated_at`

// CreateCandidate inserts a new candidate and returns the stored record
func (db *DB) CreateCandidate(ctx context.Context, input *CandidateCreateInput) (*types.Candidate, error) {
	skillsJSON, experienceJSON, locationsJSON, err := marshalCandidateFields(
		input.Skills, input.Experience, input.PreferredLocations)
	if err != nil {
		return nil, err
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, email, phone, skills, experience, preferred_locations)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+candidateColumns,
		input.Name, input.Email, nullIfEmpty(input.Phone), skillsJSON, experienceJSON, locationsJSON,
	)

	candidate, err := scanCandidate(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return candidate, nil
}

// GetCandidate retrieves a candidate by ID. Returns nil, nil when absent.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*types.Candidate, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)

	candidate, err := scanCandidate(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return candidate, nil
}

// ListCandidatesOptions contains filters for listing candidates
type ListCandidatesOptions struct {
	Skill  string // Filter by skill (substring, case-insensitive)
	Limit  int    // Pagination limit (0 means all — the match engine needs the full pool)
	Offset int    // Pagination offset
}

// ListCandidates lists candidates with optional filters, returning the
// page and the total count
func (db *DB) ListCandidates(ctx context.Context, opts ListCandidatesOptions) ([]types.Candidate, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if opts.Skill != "" {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM jsonb_array_elements_text(skills) s WHERE LOWER(s) LIKE $%d)", argIndex))
		args = append(args, "%"+strings.ToLower(opts.Skill)+"%")
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM candidates %s", whereClause)
	if err := db.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT `+candidateColumns+` FROM candidates %s ORDER BY created_at DESC`, whereClause)

	if opts.Limit > 0 {
		offset := opts.Offset
		if offset < 0 {
			offset = 0
		}
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, opts.Limit, offset)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []types.Candidate
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, err
		}
		candidates = append(candidates, *candidate)
	}

	return candidates, total, nil
}

// UpdateCandidate replaces a candidate's mutable fields. Returns nil, nil
// when the candidate does not exist.
func (db *DB) UpdateCandidate(ctx context.Context, candidate *types.Candidate) (*types.Candidate, error) {
	skillsJSON, experienceJSON, locationsJSON, err := marshalCandidateFields(
		candidate.Skills, candidate.Experience, candidate.PreferredLocations)
	if err != nil {
		return nil, err
	}

	row := db.pool.QueryRow(ctx,
		`UPDATE candidates
		 SET name = $2, email = $3, phone = $4, skills = $5, experience = $6,
		     preferred_locations = $7, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+candidateColumns,
		candidate.ID, candidate.Name, candidate.Email, nullIfEmpty(candidate.Phone),
		skillsJSON, experienceJSON, locationsJSON,
	)

	updated, err := scanCandidate(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}
	return updated, nil
}

// DeleteCandidate removes a candidate by ID
func (db *DB) DeleteCandidate(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", id)
	}
	return nil
}

// scanCandidate reads one candidate row, decoding the JSONB columns
func scanCandidate(row pgx.Row) (*types.Candidate, error) {
	var c types.Candidate
	var phone *string
	var skillsJSON, experienceJSON, locationsJSON []byte

	err := row.Scan(&c.ID, &c.Name, &c.Email, &phone, &skillsJSON,
		&experienceJSON, &locationsJSON, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if phone != nil {
		c.Phone = *phone
	}
	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &c.Skills)
	}
	if experienceJSON != nil {
		_ = json.Unmarshal(experienceJSON, &c.Experience)
	}
	if locationsJSON != nil {
		_ = json.Unmarshal(locationsJSON, &c.PreferredLocations)
	}

	return &c, nil
}

func marshalCandidateFields(skills []string, experience []types.ExperienceEntry, locations []types.PreferredLocation) ([]byte, []byte, []byte, error) {
	skillsJSON, err := json.Marshal(emptyIfNilStrings(skills))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	if experience == nil {
		experience = []types.ExperienceEntry{}
	}
	experienceJSON, err := json.Marshal(experience)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal experience: %w", err)
	}

	if locations == nil {
		locations = []types.PreferredLocation{}
	}
	locationsJSON, err := json.Marshal(locations)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal preferred locations: %w", err)
	}

	return skillsJSON, experienceJSON, locationsJSON, nil
}

func emptyIfNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// nullIfEmpty converts empty strings to nil for nullable columns
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
