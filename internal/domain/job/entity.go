package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryIT          = "it"
	CategoryBusiness    = "business"
	CategoryFinance     = "finance"
	CategoryMarketing   = "marketing"
	CategorySales       = "sales"
	CategoryHealthcare  = "healthcare"
	CategoryEducation   = "education"
	CategoryEngineering = "engineering"
	CategoryOther       = "other"
)

const (
	TypeFullTime   = "full-time"
	TypePartTime   = "part-time"
	TypeContract   = "contract"
	TypeInternship = "internship"
	TypeRemote     = "remote"
)

// Defaults used when a seeker has no application history.
const (
	DefaultCategory = CategoryIT
	DefaultJobType  = TypeFullTime
)

var Categories = []string{
	CategoryIT,
	CategoryBusiness,
	CategoryFinance,
	CategoryMarketing,
	CategorySales,
	CategoryHealthcare,
	CategoryEducation,
	CategoryEngineering,
	CategoryOther,
}

var JobTypes = []string{
	TypeFullTime,
	TypePartTime,
	TypeContract,
	TypeInternship,
	TypeRemote,
}

type Job struct {
	ID                 uuid.UUID
	EmployerID         uuid.UUID
	Title              string
	CompanyName        string
	Category           string
	JobType            string
	Location           string
	SalaryMin          *float64
	SalaryMax          *float64
	ExperienceRequired int
	SkillsRequired     string
	IsActive           bool
	PostedAt           time.Time
}

type Application struct {
	JobID       uuid.UUID
	ApplicantID uuid.UUID
	AppliedAt   time.Time
}

type SavedJob struct {
	UserID  uuid.UUID
	JobID   uuid.UUID
	SavedAt time.Time
}
