package usecase

import (
	"context"
	"errors"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/recommend"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type JobRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, count int) ([]job.Job, error)
}

type JobRecommendation struct {
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	profiles     repository.ProfileRepository
	limits       CountLimits
	logger       zerolog.Logger

	nearest nearestFunc
}

func NewJobRecommendationUsecase(
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
	profiles repository.ProfileRepository,
	limits CountLimits,
	logger zerolog.Logger,
) *JobRecommendation {
	return &JobRecommendation{
		jobs:         jobs,
		applications: applications,
		profiles:     profiles,
		limits:       limits,
		logger:       logger,
		nearest:      recommend.Nearest,
	}
}

// GetRecommendations returns active jobs closest to the seeker's inferred
// preference, nearest first. Jobs the seeker applied to or saved are never
// returned.
func (u *JobRecommendation) GetRecommendations(ctx context.Context, userID uuid.UUID, count int) ([]job.Job, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	count = u.limits.Clamp(count)

	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, u.internal(err, "load profile", userID)
	}
	if !profile.IsSeeker() {
		return nil, ErrForbidden
	}

	applied, err := u.applications.AppliedJobs(ctx, userID)
	if err != nil {
		return nil, u.internal(err, "load applications", userID)
	}
	saved, err := u.applications.SavedJobIDs(ctx, userID)
	if err != nil {
		return nil, u.internal(err, "load saved jobs", userID)
	}

	excluded := make([]uuid.UUID, 0, len(applied)+len(saved))
	for _, j := range applied {
		excluded = append(excluded, j.ID)
	}
	excluded = append(excluded, saved...)

	pool, err := u.jobs.ListActiveExcluding(ctx, excluded)
	if err != nil {
		return nil, u.internal(err, "load job pool", userID)
	}
	if len(pool) == 0 {
		return []job.Job{}, nil
	}

	matrix, vocab := recommend.EncodeJobs(pool)
	pref := recommend.DeriveUserPreference(profile, applied)
	target := recommend.JobPreferenceTarget(vocab, pref)

	ids, err := u.nearest(matrix, target, count)
	if err != nil {
		if errors.Is(err, recommend.ErrComputation) {
			u.logger.Warn().
				Err(err).
				Str("user_id", userID.String()).
				Int("pool_size", len(pool)).
				Msg("job recommendation computation failed")
			return []job.Job{}, nil
		}
		return nil, err
	}

	u.logger.Debug().
		Str("user_id", userID.String()).
		Int("pool_size", len(pool)).
		Int("categories", vocab.Categories.Len()).
		Int("locations", vocab.Locations.Len()).
		Int("returned", len(ids)).
		Msg("job recommendations computed")

	return orderJobs(pool, ids), nil
}

func (u *JobRecommendation) internal(err error, op string, userID uuid.UUID) error {
	u.logger.Error().Err(err).Str("op", op).Str("user_id", userID.String()).Msg("job recommendation store failure")
	return ErrInternal
}

// orderJobs resolves ids against records, keeping the order of ids.
func orderJobs(records []job.Job, ids []uuid.UUID) []job.Job {
	byID := make(map[uuid.UUID]job.Job, len(records))
	for _, j := range records {
		byID[j.ID] = j
	}
	out := make([]job.Job, 0, len(ids))
	for _, id := range ids {
		if j, ok := byID[id]; ok {
			out = append(out, j)
		}
	}
	return out
}
