package v1

import (
	"jobmatch/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterEmployer(r fiber.Router, candidates *handler.CandidateRecommendationHandler) {
	if r == nil || candidates == nil {
		return
	}

	candidates.RegisterEmployerRoutes(r)
}
