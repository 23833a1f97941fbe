package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"jobmatch/internal/app"
	"jobmatch/internal/config"
	"jobmatch/internal/database"
	"jobmatch/internal/database/migration"
	dbpostgres "jobmatch/internal/database/postgres"
	"jobmatch/internal/database/seeder"
	"jobmatch/migrations"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type jobItem struct {
	JobID uuid.UUID `json:"job_id"`
}

type candidateItem struct {
	UserID uuid.UUID `json:"user_id"`
}

func TestIntegration_Recommendations(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	require.NoError(t, migration.Runner{FS: migrations.FS}.Run(ctx, db))
	require.NoError(t, seeder.Runner{Seeders: seeder.Defaults()}.Run(ctx, db))

	c := app.NewContainerWithDB(testConfig(), db)
	a := app.New(c)

	t.Run("jobs for seeker", func(t *testing.T) {
		var jobs []jobItem
		get(t, a, c, seeder.DemoUserID("alice"), "/api/v1/jobs/recommendations", http.StatusOK, &jobs)

		require.NotEmpty(t, jobs)
		assert.LessOrEqual(t, len(jobs), 6)

		excluded := map[uuid.UUID]string{
			seeder.DemoJobID("acme-backend"):  "applied",
			seeder.DemoJobID("acme-frontend"): "applied",
			seeder.DemoJobID("acme-intern"):   "saved",
			seeder.DemoJobID("globex-closed"): "inactive",
		}
		seen := map[uuid.UUID]bool{}
		for _, j := range jobs {
			reason, bad := excluded[j.JobID]
			assert.False(t, bad, "job %s returned although %s", j.JobID, reason)
			assert.False(t, seen[j.JobID], "duplicate job %s", j.JobID)
			seen[j.JobID] = true
		}
	})

	t.Run("jobs for employer is forbidden", func(t *testing.T) {
		get(t, a, c, seeder.DemoUserID("acme_hr"), "/api/v1/jobs/recommendations", http.StatusForbidden, nil)
	})

	t.Run("candidates for owned job", func(t *testing.T) {
		var candidates []candidateItem
		path := "/api/v1/jobs/" + seeder.DemoJobID("acme-backend").String() + "/candidates?limit=3"
		get(t, a, c, seeder.DemoUserID("acme_hr"), path, http.StatusOK, &candidates)

		require.NotEmpty(t, candidates)
		assert.LessOrEqual(t, len(candidates), 3)
		for _, p := range candidates {
			assert.NotEqual(t, seeder.DemoUserID("alice"), p.UserID)
			assert.NotEqual(t, seeder.DemoUserID("acme_hr"), p.UserID)
		}
	})

	t.Run("candidates for foreign job", func(t *testing.T) {
		path := "/api/v1/jobs/" + seeder.DemoJobID("acme-backend").String() + "/candidates"
		get(t, a, c, seeder.DemoUserID("globex_talent"), path, http.StatusForbidden, nil)
	})

	t.Run("employer dashboard", func(t *testing.T) {
		var out struct {
			Job        *jobItem        `json:"job"`
			Candidates []candidateItem `json:"candidates"`
		}
		get(t, a, c, seeder.DemoUserID("acme_hr"), "/api/v1/employer/candidates", http.StatusOK, &out)

		require.NotNil(t, out.Job)
		assert.Equal(t, seeder.DemoJobID("acme-data"), out.Job.JobID)
		for _, p := range out.Candidates {
			assert.NotEqual(t, seeder.DemoUserID("carla"), p.UserID)
		}
	})
}

func get(t *testing.T, a *app.App, c *app.Container, userID uuid.UUID, path string, wantStatus int, out any) {
	t.Helper()

	tok, err := c.JWT.GenerateAccessToken(userID, "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := a.Fiber.Test(req, fiberTestConfig())
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, string(body))

	if out == nil {
		return
	}
	var env semanticResponse
	require.NoError(t, json.Unmarshal(body, &env))
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func fiberTestConfig() fiber.TestConfig {
	return fiber.TestConfig{Timeout: 10 * time.Second, FailOnTimeout: true}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("JOBMATCH_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("JOBMATCH_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("JOBMATCH_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("JOBMATCH_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("JOBMATCH_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("JOBMATCH_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set JOBMATCH_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	db, err := dbpostgres.Connect(ctx, config.DatabaseConfig{
		DBHost:         host,
		DBPort:         port,
		DBName:         name,
		DBUser:         user,
		DBPassword:     pass,
		DBSSLMode:      ssl,
		ConnectTimeout: 5 * time.Second,
		PoolMaxConns:   4,
	})
	require.NoError(t, err, "connect db")
	return db
}

func testConfig() config.Config {
	return config.Config{
		App: config.AppConfig{AppName: "jobmatch-integration", Environment: "test", HTTPPort: "0"},
		JWT: config.JWTConfig{AccessSecret: "integration-secret-0123456789", AccessExpiresIn: time.Hour},
		Recommend: config.RecommendConfig{
			JobCount:       6,
			CandidateCount: 10,
			MaxCount:       50,
		},
	}
}

func stringsOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
