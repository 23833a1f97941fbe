package recommend

import (
	"testing"

	"jobmatch/internal/domain/job"

	"github.com/stretchr/testify/assert"
)

func TestMostCommon(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "empty", values: nil, want: ""},
		{name: "single", values: []string{"it"}, want: "it"},
		{name: "clear winner", values: []string{"sales", "it", "it"}, want: "it"},
		{name: "tie goes to first seen", values: []string{"sales", "it", "it", "sales"}, want: "sales"},
		{name: "tie order matters", values: []string{"it", "sales"}, want: "it"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MostCommon(tt.values))
		})
	}
}

func TestDeriveUserPreference_NoApplications(t *testing.T) {
	got := DeriveUserPreference(seekerProfile("Austin", 4), nil)

	assert.Equal(t, UserPreference{
		Category:   job.DefaultCategory,
		JobType:    job.DefaultJobType,
		Experience: 4,
		Location:   "Austin",
	}, got)
}

func TestDeriveUserPreference_NoApplicationsNoLocation(t *testing.T) {
	got := DeriveUserPreference(seekerProfile("", 0), nil)
	assert.Equal(t, "", got.Location)
	assert.Equal(t, 0.0, got.Experience)
}

func TestDeriveUserPreference_FromApplications(t *testing.T) {
	applied := []job.Job{
		{Category: "finance", JobType: job.TypeContract, Location: "Boston", ExperienceRequired: 1},
		{Category: "it", JobType: job.TypeRemote, Location: "Austin", ExperienceRequired: 4},
		{Category: "it", JobType: job.TypeContract, Location: "Austin", ExperienceRequired: 2},
	}

	got := DeriveUserPreference(seekerProfile("Denver", 10), applied)

	assert.Equal(t, "it", got.Category)
	assert.Equal(t, job.TypeContract, got.JobType)
	assert.InDelta(t, 7.0/3.0, got.Experience, 1e-12)
	assert.Equal(t, "Denver", got.Location)
}

func TestDeriveUserPreference_LocationFallsBackToFirstApplication(t *testing.T) {
	applied := []job.Job{
		{Category: "it", JobType: job.TypeRemote, Location: "Boston"},
		{Category: "it", JobType: job.TypeRemote, Location: "Austin"},
	}

	got := DeriveUserPreference(seekerProfile("", 0), applied)
	assert.Equal(t, "Boston", got.Location)
}
