package routes

import (
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/delivery/http/middleware"
	v1 "jobmatch/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(
	r fiber.Router,
	auth *middleware.AuthMiddleware,
	jobs *handler.JobRecommendationHandler,
	candidates *handler.CandidateRecommendationHandler,
) {
	if r == nil || auth == nil {
		return
	}

	v1.Register(r, auth, jobs, candidates)
}
