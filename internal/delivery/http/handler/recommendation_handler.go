package handler

import (
	"errors"
	"time"

	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	var req dto.RecommendationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skills := make([]usecase.SkillClaim, 0, len(req.Skills))
	for _, s := range req.Skills {
		skills = append(skills, usecase.SkillClaim{Name: s.Name, Proficiency: s.Proficiency})
	}

	params := usecase.RecommendationParams{
		Skills:     skills,
		TargetRole: req.TargetRole,
		Location:   req.Location,
	}
	if req.TimeoutMs > 0 {
		params.Timeout = time.Duration(req.TimeoutMs) * time.Millisecond
	}

	jobs, err := h.uc.GetRecommendations(c.Context(), params)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill entries", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := dto.RecommendationResponse{Jobs: make([]dto.RecommendedJobResponse, 0, len(jobs))}
	for _, j := range jobs {
		out.Jobs = append(out.Jobs, dto.RecommendedJobResponse{
			Title:           j.Title,
			Company:         j.Company,
			Location:        j.Location,
			RequiredSkills:  j.RequiredSkills,
			Description:     j.Description,
			ApplicationLink: j.ApplicationLink,
			MatchScore:      j.MatchScore,
			SourcePlatform:  j.SourcePlatform,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
