package dto

import (
	"jobmatch/internal/domain/user"

	"github.com/google/uuid"
)

type CandidateResponse struct {
	UserID          uuid.UUID `json:"user_id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	Location        string    `json:"location"`
	ExperienceYears int       `json:"experience_years"`
	Skills          string    `json:"skills"`
	HasResume       bool      `json:"has_resume"`
	Education       string    `json:"education"`
}

type LatestJobCandidatesResponse struct {
	Job        *JobResponse        `json:"job"`
	Candidates []CandidateResponse `json:"candidates"`
}

func NewCandidateResponses(profiles []user.Profile) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, CandidateResponse{
			UserID:          p.UserID,
			Username:        p.Username,
			Email:           p.Email,
			Location:        p.Location,
			ExperienceYears: p.ExperienceYears,
			Skills:          p.Skills,
			HasResume:       p.HasResume(),
			Education:       p.Education,
		})
	}
	return out
}
