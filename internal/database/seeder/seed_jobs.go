package seeder

import (
	"context"
	"fmt"
	"time"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/job"
)

type demoJob struct {
	Slug       string
	Employer   string
	Title      string
	Company    string
	Category   string
	JobType    string
	Location   string
	SalaryMin  float64
	SalaryMax  float64
	Experience int
	Skills     string
	Active     bool
	Age        time.Duration
}

var demoJobs = []demoJob{
	{Slug: "acme-backend", Employer: "acme_hr", Title: "Backend Engineer", Company: "Acme", Category: job.CategoryIT, JobType: job.TypeFullTime, Location: "Austin", SalaryMin: 90000, SalaryMax: 120000, Experience: 3, Skills: "go,postgresql", Active: true, Age: 24 * time.Hour},
	{Slug: "acme-frontend", Employer: "acme_hr", Title: "Frontend Developer", Company: "Acme", Category: job.CategoryIT, JobType: job.TypeContract, Location: "Remote", Experience: 1, Skills: "javascript,react", Active: true, Age: 72 * time.Hour},
	{Slug: "acme-data", Employer: "acme_hr", Title: "Data Scientist", Company: "Acme", Category: job.CategoryIT, JobType: job.TypeFullTime, Location: "Denver", SalaryMin: 110000, SalaryMax: 150000, Experience: 5, Skills: "python,ml,sql", Active: true, Age: 6 * time.Hour},
	{Slug: "acme-intern", Employer: "acme_hr", Title: "Engineering Intern", Company: "Acme", Category: job.CategoryEngineering, JobType: job.TypeInternship, Location: "Austin", SalaryMin: 20000, SalaryMax: 25000, Skills: "", Active: true, Age: 240 * time.Hour},
	{Slug: "globex-analyst", Employer: "globex_talent", Title: "Financial Analyst", Company: "Globex", Category: job.CategoryFinance, JobType: job.TypeFullTime, Location: "Boston", SalaryMin: 70000, SalaryMax: 85000, Experience: 2, Skills: "excel,sql", Active: true, Age: 48 * time.Hour},
	{Slug: "globex-sales", Employer: "globex_talent", Title: "Account Executive", Company: "Globex", Category: job.CategorySales, JobType: job.TypeFullTime, Location: "Chicago", SalaryMin: 60000, SalaryMax: 90000, Experience: 4, Skills: "sales,crm", Active: true, Age: 12 * time.Hour},
	{Slug: "globex-marketing", Employer: "globex_talent", Title: "Marketing Coordinator", Company: "Globex", Category: job.CategoryMarketing, JobType: job.TypePartTime, Location: "Boston", Experience: 1, Skills: "seo,content", Active: true, Age: 96 * time.Hour},
	{Slug: "globex-closed", Employer: "globex_talent", Title: "Office Manager", Company: "Globex", Category: job.CategoryBusiness, JobType: job.TypeFullTime, Location: "Boston", SalaryMin: 50000, SalaryMax: 60000, Experience: 3, Active: false, Age: 720 * time.Hour},
}

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs",
		"id", "employer_id", "title", "company_name", "category", "job_type", "location",
		"salary_min", "salary_max", "experience_required", "skills_required", "is_active", "posted_at",
	); err != nil {
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
	for _, j := range demoJobs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO jobs (id, employer_id, title, company_name, category, job_type, location,
			                   salary_min, salary_max, experience_required, skills_required, is_active, posted_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			 ON CONFLICT (id) DO NOTHING`,
			DemoJobID(j.Slug).String(),
			DemoUserID(j.Employer).String(),
			j.Title,
			j.Company,
			j.Category,
			j.JobType,
			j.Location,
			nullableSalary(j.SalaryMin),
			nullableSalary(j.SalaryMax),
			j.Experience,
			j.Skills,
			j.Active,
			now.Add(-j.Age),
		); err != nil {
			return fmt.Errorf("insert job %s: %w", j.Slug, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func nullableSalary(v float64) any {
	if v == 0 {
		return nil
	}
	return v
}
