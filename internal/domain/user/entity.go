package user

import (
	"strings"

	"github.com/google/uuid"
)

const (
	TypeSeeker   = "seeker"
	TypeEmployer = "employer"
)

// Profile is the seeker or employer side of a user. Seeker fields are empty
// for employers.
type Profile struct {
	UserID          uuid.UUID
	Username        string
	Email           string
	UserType        string
	Location        string
	ExperienceYears int
	Skills          string
	ResumePath      string
	Education       string
}

func (p Profile) HasResume() bool {
	return strings.TrimSpace(p.ResumePath) != ""
}

func (p Profile) IsSeeker() bool {
	return p.UserType == TypeSeeker
}

func (p Profile) IsEmployer() bool {
	return p.UserType == TypeEmployer
}
