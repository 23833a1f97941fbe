package usecase

import (
	"errors"

	"jobmatch/internal/domain/recommend"

	"github.com/google/uuid"
)

var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrProfileNotFound = errors.New("Profile not found")
	ErrJobNotFound     = errors.New("Job not found")
	ErrInternal        = errors.New("internal error")
)

// CountLimits bounds how many recommendations a caller may ask for.
type CountLimits struct {
	Default int
	Max     int
}

func (l CountLimits) Clamp(n int) int {
	if n <= 0 {
		n = l.Default
	}
	if l.Max > 0 && n > l.Max {
		n = l.Max
	}
	if n < 1 {
		n = 1
	}
	return n
}

// nearestFunc is the neighbor search used by the recommendation usecases.
type nearestFunc func(m recommend.Matrix, target []float64, k int) ([]uuid.UUID, error)
