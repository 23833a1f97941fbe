package recommend

import (
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/user"
)

// UserPreference is what a seeker appears to look for.
type UserPreference struct {
	Category   string
	JobType    string
	Experience float64
	Location   string
}

// DeriveUserPreference infers a preference from the jobs a seeker applied to,
// given newest application first. Without applications it falls back to the
// profile and the default category and job type.
func DeriveUserPreference(profile user.Profile, applied []job.Job) UserPreference {
	if len(applied) == 0 {
		return UserPreference{
			Category:   job.DefaultCategory,
			JobType:    job.DefaultJobType,
			Experience: float64(profile.ExperienceYears),
			Location:   profile.Location,
		}
	}

	categories := make([]string, 0, len(applied))
	types := make([]string, 0, len(applied))
	total := 0
	for _, j := range applied {
		categories = append(categories, j.Category)
		types = append(types, j.JobType)
		total += j.ExperienceRequired
	}

	location := profile.Location
	if location == "" {
		location = applied[0].Location
	}

	return UserPreference{
		Category:   MostCommon(categories),
		JobType:    MostCommon(types),
		Experience: float64(total) / float64(len(applied)),
		Location:   location,
	}
}

// MostCommon returns the most frequent value. Among equally frequent values
// the one seen first wins.
func MostCommon(values []string) string {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	best := ""
	bestCount := 0
	for _, v := range values {
		if c := counts[v]; c > bestCount {
			best = v
			bestCount = c
		}
	}
	return best
}
