package dto

import (
	"time"

	"jobmatch/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	JobID              uuid.UUID `json:"job_id"`
	EmployerID         uuid.UUID `json:"employer_id"`
	Title              string    `json:"title"`
	CompanyName        string    `json:"company_name"`
	Category           string    `json:"category"`
	JobType            string    `json:"job_type"`
	Location           string    `json:"location"`
	SalaryMin          *float64  `json:"salary_min"`
	SalaryMax          *float64  `json:"salary_max"`
	ExperienceRequired int       `json:"experience_required"`
	SkillsRequired     string    `json:"skills_required"`
	PostedAt           time.Time `json:"posted_at"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		JobID:              j.ID,
		EmployerID:         j.EmployerID,
		Title:              j.Title,
		CompanyName:        j.CompanyName,
		Category:           j.Category,
		JobType:            j.JobType,
		Location:           j.Location,
		SalaryMin:          j.SalaryMin,
		SalaryMax:          j.SalaryMax,
		ExperienceRequired: j.ExperienceRequired,
		SkillsRequired:     j.SkillsRequired,
		PostedAt:           j.PostedAt,
	}
}

func NewJobResponses(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}
