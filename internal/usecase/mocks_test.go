package usecase

import (
	"context"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

// memStore backs all three repositories with in-memory records and applies
// the same exclusion rules as the SQL queries.
type memStore struct {
	jobs         []job.Job
	profiles     []user.Profile
	applications []job.Application // newest first
	saved        []job.SavedJob

	err error
}

type mockJobRepo struct{ s *memStore }

func (m mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if m.s.err != nil {
		return job.Job{}, m.s.err
	}
	for _, j := range m.s.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, repository.ErrJobNotFound
}

func (m mockJobRepo) ListActiveExcluding(_ context.Context, excluded []uuid.UUID) ([]job.Job, error) {
	if m.s.err != nil {
		return nil, m.s.err
	}
	skip := idSet(excluded)
	out := []job.Job{}
	for _, j := range m.s.jobs {
		if j.IsActive && !skip[j.ID] {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m mockJobRepo) LatestActiveByEmployer(_ context.Context, employerID uuid.UUID) (job.Job, error) {
	if m.s.err != nil {
		return job.Job{}, m.s.err
	}
	var latest *job.Job
	for i, j := range m.s.jobs {
		if j.EmployerID != employerID || !j.IsActive {
			continue
		}
		if latest == nil || j.PostedAt.After(latest.PostedAt) {
			latest = &m.s.jobs[i]
		}
	}
	if latest == nil {
		return job.Job{}, repository.ErrJobNotFound
	}
	return *latest, nil
}

type mockApplicationRepo struct{ s *memStore }

func (m mockApplicationRepo) AppliedJobs(ctx context.Context, userID uuid.UUID) ([]job.Job, error) {
	if m.s.err != nil {
		return nil, m.s.err
	}
	out := []job.Job{}
	for _, a := range m.s.applications {
		if a.ApplicantID != userID {
			continue
		}
		j, err := mockJobRepo(m).GetByID(ctx, a.JobID)
		if err == nil {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m mockApplicationRepo) SavedJobIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if m.s.err != nil {
		return nil, m.s.err
	}
	out := []uuid.UUID{}
	for _, sj := range m.s.saved {
		if sj.UserID == userID {
			out = append(out, sj.JobID)
		}
	}
	return out, nil
}

func (m mockApplicationRepo) ApplicantIDs(_ context.Context, jobID uuid.UUID) ([]uuid.UUID, error) {
	if m.s.err != nil {
		return nil, m.s.err
	}
	out := []uuid.UUID{}
	for _, a := range m.s.applications {
		if a.JobID == jobID {
			out = append(out, a.ApplicantID)
		}
	}
	return out, nil
}

type mockProfileRepo struct{ s *memStore }

func (m mockProfileRepo) GetByUserID(_ context.Context, id uuid.UUID) (user.Profile, error) {
	if m.s.err != nil {
		return user.Profile{}, m.s.err
	}
	for _, p := range m.s.profiles {
		if p.UserID == id {
			return p, nil
		}
	}
	return user.Profile{}, repository.ErrProfileNotFound
}

func (m mockProfileRepo) ListSeekersExcluding(_ context.Context, excluded []uuid.UUID) ([]user.Profile, error) {
	if m.s.err != nil {
		return nil, m.s.err
	}
	skip := idSet(excluded)
	out := []user.Profile{}
	for _, p := range m.s.profiles {
		if p.IsSeeker() && !skip[p.UserID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m mockProfileRepo) ListSeekerLocations(context.Context) ([]string, error) {
	if m.s.err != nil {
		return nil, m.s.err
	}
	out := []string{}
	for _, p := range m.s.profiles {
		if p.IsSeeker() {
			out = append(out, p.Location)
		}
	}
	return out, nil
}

func idSet(ids []uuid.UUID) map[uuid.UUID]bool {
	out := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}
