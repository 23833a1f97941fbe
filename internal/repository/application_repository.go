package repository

import (
	"context"
	"fmt"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/job"

	"github.com/google/uuid"
)

// ApplicationRepository reads the (user, job) links used for exclusions and
// preference inference.
type ApplicationRepository interface {
	AppliedJobs(ctx context.Context, userID uuid.UUID) ([]job.Job, error)
	SavedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ApplicantIDs(ctx context.Context, jobID uuid.UUID) ([]uuid.UUID, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

// AppliedJobs returns every job the user applied to, newest application
// first, regardless of whether the job is still active.
func (r *PostgresApplicationRepository) AppliedJobs(ctx context.Context, userID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.applicant_id = $1
		 ORDER BY a.applied_at DESC, j.id ASC`,
		userID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("applied jobs for %s: %w", userID, err)
	}
	return collectJobs(rows)
}

func (r *PostgresApplicationRepository) SavedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT job_id FROM saved_jobs WHERE user_id = $1`,
		userID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("saved jobs for %s: %w", userID, err)
	}
	return collectIDs(rows)
}

func (r *PostgresApplicationRepository) ApplicantIDs(ctx context.Context, jobID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT applicant_id FROM applications WHERE job_id = $1`,
		jobID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("applicants for %s: %w", jobID, err)
	}
	return collectIDs(rows)
}

func collectIDs(rows database.Rows) ([]uuid.UUID, error) {
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
