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

// JobCreateInput contains the fields accepted when creating a job
type JobCreateInput struct {
	Title       string
	Description string
	Skills      []string
	Experience  int
	Location    string
}

const jobColumns = `id, title, description, skills, experience, location, created_at, updated_at`

// CreateJob inserts a new job posting and returns the stored record
func (db *DB) CreateJob(ctx context.Context, input *JobCreateInput) (*types.Job, error) {
	skillsJSON, err := json.Marshal(emptyIfNilStrings(input.Skills))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, description, skills, experience, location)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+jobColumns,
		input.Title, nullIfEmpty(input.Description), skillsJSON, input.Experience, nullIfEmpty(input.Location),
	)

	job, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// GetJob retrieves a job by ID. Returns nil, nil when absent.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)

	job, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListJobsOptions contains filters for listing jobs
type ListJobsOptions struct {
	Location string // Filter by location (substring, case-insensitive)
	Limit    int    // Pagination limit (0 means all — the match engine needs the full pool)
	Offset   int    // Pagination offset
}

// ListJobs lists jobs with optional filters, returning the page and the
// total count
func (db *DB) ListJobs(ctx context.Context, opts ListJobsOptions) ([]types.Job, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if opts.Location != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(location) LIKE $%d", argIndex))
		args = append(args, "%"+strings.ToLower(opts.Location)+"%")
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM jobs %s", whereClause)
	if err := db.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+jobColumns+` FROM jobs %s ORDER BY created_at DESC`, whereClause)

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
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}

	return jobs, total, nil
}

// UpdateJob replaces a job's mutable fields. Returns nil, nil when the
// job does not exist.
func (db *DB) UpdateJob(ctx context.Context, job *types.Job) (*types.Job, error) {
	skillsJSON, err := json.Marshal(emptyIfNilStrings(job.Skills))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skills: %w", err)
	}

	row := db.pool.QueryRow(ctx,
		`UPDATE jobs
		 SET title = $2, description = $3, skills = $4, experience = $5,
		     location = $6, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+jobColumns,
		job.ID, job.Title, nullIfEmpty(job.Description), skillsJSON, job.Experience, nullIfEmpty(job.Location),
	)

	updated, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return updated, nil
}

// DeleteJob removes a job by ID
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}

// scanJob reads one job row, decoding the JSONB skills column
func scanJob(row pgx.Row) (*types.Job, error) {
	var j types.Job
	var description, location *string
	var skillsJSON []byte

	err := row.Scan(&j.ID, &j.Title, &description, &skillsJSON,
		&j.Experience, &location, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if description != nil {
		j.Description = *description
	}
	if location != nil {
		j.Location = *location
	}
	if skillsJSON != nil {
		_ = json.Unmarshal(skillsJSON, &j.Skills)
	}

	return &j, nil
}
