package v1

import (
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

// Register mounts every v1 route behind bearer authentication.
func Register(
	r fiber.Router,
	auth *middleware.AuthMiddleware,
	jobs *handler.JobRecommendationHandler,
	candidates *handler.CandidateRecommendationHandler,
) {
	if r == nil {
		return
	}

	protected := r.Group("", auth.Middleware())

	RegisterJobs(protected.Group("/jobs"), jobs, candidates)
	RegisterEmployer(protected.Group("/employer"), candidates)
}
