package seeder

import (
	"context"
	"fmt"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/user"
)

type demoProfile struct {
	Username   string
	UserType   string
	Location   string
	Experience int
	Skills     string
	Resume     string
	Education  string
}

var demoProfiles = []demoProfile{
	{Username: "acme_hr", UserType: user.TypeEmployer, Location: "Austin"},
	{Username: "globex_talent", UserType: user.TypeEmployer, Location: "Boston"},
	{
		Username: "alice", UserType: user.TypeSeeker, Location: "Austin", Experience: 3,
		Skills: "go,postgresql,docker", Resume: "resumes/alice.pdf",
		Education: "BSc Computer Science, University of Texas at Austin. Coursework in distributed systems, databases and networking. Teaching assistant for operating systems.",
	},
	{
		Username: "bob", UserType: user.TypeSeeker, Location: "Boston", Experience: 1,
		Skills: "excel,sql", Education: "BA Economics",
	},
	{
		Username: "carla", UserType: user.TypeSeeker, Location: "Denver", Experience: 7,
		Skills: "python,ml,sql,spark", Resume: "resumes/carla.pdf",
		Education: "MSc Statistics, University of Colorado. Thesis on scalable Bayesian inference for clickstream data. Published two papers on recommendation quality.",
	},
	{Username: "dan", UserType: user.TypeSeeker, Location: "Austin", Skills: "javascript"},
	{
		Username: "eve", UserType: user.TypeSeeker, Location: "Chicago", Experience: 5,
		Skills: "sales,crm,negotiation", Resume: "resumes/eve.pdf",
		Education: "BBA Marketing, Loyola University Chicago",
	},
}

type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

func (UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "username", "email", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "profiles",
		"user_id", "user_type", "location", "experience_years", "skills", "resume_path", "education",
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

	for _, p := range demoProfiles {
		id := DemoUserID(p.Username)
		if _, err := tx.Exec(ctx,
			`INSERT INTO users (id, username, email) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`,
			id.String(), p.Username, p.Username+"@example.com",
		); err != nil {
			return fmt.Errorf("insert user %s: %w", p.Username, err)
		}

		var resume any
		if p.Resume != "" {
			resume = p.Resume
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO profiles (user_id, user_type, location, experience_years, skills, resume_path, education)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (user_id) DO NOTHING`,
			id.String(), p.UserType, p.Location, p.Experience, p.Skills, resume, p.Education,
		); err != nil {
			return fmt.Errorf("insert profile %s: %w", p.Username, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
