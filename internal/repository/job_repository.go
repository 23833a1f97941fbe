package repository

import (
	"context"
	"errors"
	"fmt"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobRepository interface {
	GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error)
	ListActiveExcluding(ctx context.Context, excluded []uuid.UUID) ([]job.Job, error)
	LatestActiveByEmployer(ctx context.Context, employerID uuid.UUID) (job.Job, error)
}

const jobColumns = `j.id, j.employer_id, j.title, j.company_name, j.category, j.job_type,
	j.location, j.salary_min::float8, j.salary_max::float8, j.experience_required,
	j.skills_required, j.is_active, j.posted_at`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs j WHERE j.id = $1`, jobID.String())
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("get job %s: %w", jobID, err)
	}
	return j, nil
}

// ListActiveExcluding returns active jobs newest first, skipping excluded ids.
func (r *PostgresJobRepository) ListActiveExcluding(ctx context.Context, excluded []uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs j
		 WHERE j.is_active = true
		   AND NOT (j.id = ANY($1::uuid[]))
		 ORDER BY j.posted_at DESC, j.id ASC`,
		uuidStrings(excluded),
	)
	if err != nil {
		return nil, fmt.Errorf("list active jobs: %w", err)
	}
	return collectJobs(rows)
}

func (r *PostgresJobRepository) LatestActiveByEmployer(ctx context.Context, employerID uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs j
		 WHERE j.employer_id = $1 AND j.is_active = true
		 ORDER BY j.posted_at DESC, j.id ASC
		 LIMIT 1`,
		employerID.String(),
	)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, fmt.Errorf("latest job for employer %s: %w", employerID, err)
	}
	return j, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID,
		&j.EmployerID,
		&j.Title,
		&j.CompanyName,
		&j.Category,
		&j.JobType,
		&j.Location,
		&j.SalaryMin,
		&j.SalaryMax,
		&j.ExperienceRequired,
		&j.SkillsRequired,
		&j.IsActive,
		&j.PostedAt,
	)
	return j, err
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
