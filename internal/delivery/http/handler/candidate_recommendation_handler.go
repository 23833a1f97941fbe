package handler

import (
	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"
	"jobmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CandidateRecommendationHandler struct {
	uc usecase.CandidateRecommendationUsecase
}

func NewCandidateRecommendationHandler(uc usecase.CandidateRecommendationUsecase) *CandidateRecommendationHandler {
	return &CandidateRecommendationHandler{uc: uc}
}

// RegisterJobRoutes mounts the per-job route under a /jobs group.
func (h *CandidateRecommendationHandler) RegisterJobRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/:id/candidates", h.ForJob)
}

// RegisterEmployerRoutes mounts the dashboard route under an /employer group.
func (h *CandidateRecommendationHandler) RegisterEmployerRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/candidates", h.ForLatestJob)
}

func (h *CandidateRecommendationHandler) ForJob(c fiber.Ctx) error {
	requesterID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", nil, err)
	}

	candidates, err := h.uc.GetRecommendations(c.Context(), requesterID, jobID, parseQueryInt(c, "limit", 0))
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateResponses(candidates))
}

func (h *CandidateRecommendationHandler) ForLatestJob(c fiber.Ctx) error {
	employerID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	res, err := h.uc.ForLatestJob(c.Context(), employerID, parseQueryInt(c, "limit", 0))
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	out := dto.LatestJobCandidatesResponse{Candidates: dto.NewCandidateResponses(res.Candidates)}
	if res.Job != nil {
		j := dto.NewJobResponse(*res.Job)
		out.Job = &j
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
