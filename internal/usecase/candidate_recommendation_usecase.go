package usecase

import (
	"context"
	"errors"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/recommend"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type CandidateRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, requesterID, jobID uuid.UUID, count int) ([]user.Profile, error)
	ForLatestJob(ctx context.Context, employerID uuid.UUID, count int) (LatestJobCandidates, error)
}

// LatestJobCandidates is the employer dashboard view: the newest active job
// and the candidates closest to it. Job is nil when the employer has no
// active job.
type LatestJobCandidates struct {
	Job        *job.Job
	Candidates []user.Profile
}

type CandidateRecommendation struct {
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	profiles     repository.ProfileRepository
	limits       CountLimits
	logger       zerolog.Logger

	nearest nearestFunc
}

func NewCandidateRecommendationUsecase(
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
	profiles repository.ProfileRepository,
	limits CountLimits,
	logger zerolog.Logger,
) *CandidateRecommendation {
	return &CandidateRecommendation{
		jobs:         jobs,
		applications: applications,
		profiles:     profiles,
		limits:       limits,
		logger:       logger,
		nearest:      recommend.Nearest,
	}
}

// GetRecommendations ranks seekers who have not applied to the job by
// closeness to its requirements. Only the job's employer may ask.
func (u *CandidateRecommendation) GetRecommendations(ctx context.Context, requesterID, jobID uuid.UUID, count int) ([]user.Profile, error) {
	if requesterID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return nil, ErrJobNotFound
	}

	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, u.internal(err, "load job", jobID)
	}
	if j.EmployerID != requesterID {
		return nil, ErrForbidden
	}

	return u.recommend(ctx, j, u.limits.Clamp(count))
}

func (u *CandidateRecommendation) ForLatestJob(ctx context.Context, employerID uuid.UUID, count int) (LatestJobCandidates, error) {
	if employerID == uuid.Nil {
		return LatestJobCandidates{}, ErrUnauthorized
	}

	profile, err := u.profiles.GetByUserID(ctx, employerID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return LatestJobCandidates{}, ErrProfileNotFound
		}
		return LatestJobCandidates{}, u.internal(err, "load profile", employerID)
	}
	if !profile.IsEmployer() {
		return LatestJobCandidates{}, ErrForbidden
	}

	j, err := u.jobs.LatestActiveByEmployer(ctx, employerID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return LatestJobCandidates{Candidates: []user.Profile{}}, nil
		}
		return LatestJobCandidates{}, u.internal(err, "load latest job", employerID)
	}

	candidates, err := u.recommend(ctx, j, u.limits.Clamp(count))
	if err != nil {
		return LatestJobCandidates{}, err
	}
	return LatestJobCandidates{Job: &j, Candidates: candidates}, nil
}

func (u *CandidateRecommendation) recommend(ctx context.Context, j job.Job, count int) ([]user.Profile, error) {
	applicants, err := u.applications.ApplicantIDs(ctx, j.ID)
	if err != nil {
		return nil, u.internal(err, "load applicants", j.ID)
	}

	pool, err := u.profiles.ListSeekersExcluding(ctx, applicants)
	if err != nil {
		return nil, u.internal(err, "load candidate pool", j.ID)
	}
	if len(pool) == 0 {
		return []user.Profile{}, nil
	}

	locations, err := u.profiles.ListSeekerLocations(ctx)
	if err != nil {
		return nil, u.internal(err, "load seeker locations", j.ID)
	}

	matrix, _ := recommend.EncodeCandidates(pool)
	seekerLocations := recommend.NewVocabulary(locations)
	target := recommend.CandidateRequirementTarget(j, seekerLocations)

	ids, err := u.nearest(matrix, target, count)
	if err != nil {
		if errors.Is(err, recommend.ErrComputation) {
			u.logger.Warn().
				Err(err).
				Str("job_id", j.ID.String()).
				Int("pool_size", len(pool)).
				Msg("candidate recommendation computation failed")
			return []user.Profile{}, nil
		}
		return nil, err
	}

	u.logger.Debug().
		Str("job_id", j.ID.String()).
		Int("pool_size", len(pool)).
		Int("seeker_locations", seekerLocations.Len()).
		Int("returned", len(ids)).
		Msg("candidate recommendations computed")

	return orderProfiles(pool, ids), nil
}

func (u *CandidateRecommendation) internal(err error, op string, id uuid.UUID) error {
	u.logger.Error().Err(err).Str("op", op).Str("id", id.String()).Msg("candidate recommendation store failure")
	return ErrInternal
}

func orderProfiles(records []user.Profile, ids []uuid.UUID) []user.Profile {
	byID := make(map[uuid.UUID]user.Profile, len(records))
	for _, p := range records {
		byID[p.UserID] = p
	}
	out := make([]user.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}
