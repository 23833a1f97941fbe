package seeder

import (
	"context"
	"fmt"
	"time"

	"jobmatch/internal/database"
)

var demoApplications = []struct {
	Applicant string
	Job       string
	Age       time.Duration
}{
	{Applicant: "alice", Job: "acme-backend", Age: 2 * time.Hour},
	{Applicant: "alice", Job: "acme-frontend", Age: 30 * time.Hour},
	{Applicant: "bob", Job: "globex-analyst", Age: 5 * time.Hour},
	{Applicant: "carla", Job: "acme-data", Age: time.Hour},
}

var demoSavedJobs = []struct {
	User string
	Job  string
}{
	{User: "alice", Job: "acme-intern"},
	{User: "eve", Job: "globex-marketing"},
}

type ApplicationsSeeder struct{}

func (ApplicationsSeeder) Name() string { return "applications" }

func (ApplicationsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "applications", "job_id", "applicant_id", "applied_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "saved_jobs", "user_id", "job_id", "saved_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	now := time.Now().UTC()
	for _, a := range demoApplications {
		if _, err := tx.Exec(ctx,
			`INSERT INTO applications (job_id, applicant_id, applied_at) VALUES ($1, $2, $3)
			 ON CONFLICT (job_id, applicant_id) DO NOTHING`,
			DemoJobID(a.Job).String(), DemoUserID(a.Applicant).String(), now.Add(-a.Age),
		); err != nil {
			return fmt.Errorf("insert application %s/%s: %w", a.Applicant, a.Job, err)
		}
	}

	for _, s := range demoSavedJobs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO saved_jobs (user_id, job_id) VALUES ($1, $2)
			 ON CONFLICT (user_id, job_id) DO NOTHING`,
			DemoUserID(s.User).String(), DemoJobID(s.Job).String(),
		); err != nil {
			return fmt.Errorf("insert saved job %s/%s: %w", s.User, s.Job, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
