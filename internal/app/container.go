package app

import (
	"context"
	"time"

	"jobmatch/internal/config"
	"jobmatch/internal/database"
	dbpostgres "jobmatch/internal/database/postgres"
	"jobmatch/internal/logging"
	"jobmatch/internal/pkg/jwt"
	"jobmatch/internal/repository"
	"jobmatch/internal/usecase"
)

type Container struct {
	Config config.Config
	DB     database.DB
	JWT    jwt.Service

	Jobs         repository.JobRepository
	Applications repository.ApplicationRepository
	Profiles     repository.ProfileRepository

	JobRecommendations       usecase.JobRecommendationUsecase
	CandidateRecommendations usecase.CandidateRecommendationUsecase
}

func NewContainer(ctx context.Context, cfg config.Config) (*Container, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return NewContainerWithDB(cfg, db), nil
}

// NewContainerWithDB wires repositories and usecases over an open database.
func NewContainerWithDB(cfg config.Config, db database.DB) *Container {
	jobs := repository.NewPostgresJobRepository(db)
	applications := repository.NewPostgresApplicationRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)

	return &Container{
		Config:       cfg,
		DB:           db,
		JWT:          jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn),
		Jobs:         jobs,
		Applications: applications,
		Profiles:     profiles,
		JobRecommendations: usecase.NewJobRecommendationUsecase(
			jobs, applications, profiles,
			usecase.CountLimits{Default: cfg.Recommend.JobCount, Max: cfg.Recommend.MaxCount},
			logging.With("job_recommendation"),
		),
		CandidateRecommendations: usecase.NewCandidateRecommendationUsecase(
			jobs, applications, profiles,
			usecase.CountLimits{Default: cfg.Recommend.CandidateCount, Max: cfg.Recommend.MaxCount},
			logging.With("candidate_recommendation"),
		),
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
