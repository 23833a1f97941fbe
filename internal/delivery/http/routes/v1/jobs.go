package v1

import (
	"jobmatch/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterJobs(r fiber.Router, jobs *handler.JobRecommendationHandler, candidates *handler.CandidateRecommendationHandler) {
	if r == nil {
		return
	}

	if jobs != nil {
		jobs.RegisterRoutes(r)
	}
	if candidates != nil {
		candidates.RegisterJobRoutes(r)
	}
}
