package routes

import (
	"jobmatch/internal/delivery/http/handler"
	"jobmatch/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health     *handler.HealthHandler
	auth       *middleware.AuthMiddleware
	jobs       *handler.JobRecommendationHandler
	candidates *handler.CandidateRecommendationHandler
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *middleware.AuthMiddleware,
	jobs *handler.JobRecommendationHandler,
	candidates *handler.CandidateRecommendationHandler,
) *Registry {
	return &Registry{health: health, auth: auth, jobs: jobs, candidates: candidates}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health == nil {
		return
	}
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.auth, r.jobs, r.candidates)
}
