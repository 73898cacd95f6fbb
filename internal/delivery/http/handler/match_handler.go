package handler

import (
	"errors"

	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/match")
	grp.Post("/", h.ComputeMatch)
	grp.Post("/gap", h.ComputeGap)
}

func (h *MatchHandler) ComputeMatch(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	possessed, required := toUsecaseSkills(req)
	score, err := h.uc.ComputeMatch(c.Context(), possessed, required)
	if err != nil {
		return mapMatchingError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.MatchResponse{Score: score})
}

func (h *MatchHandler) ComputeGap(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	possessed, required := toUsecaseSkills(req)
	rep, err := h.uc.ComputeGap(c.Context(), possessed, required)
	if err != nil {
		return mapMatchingError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.GapResponse{
		MatchedSkills:         rep.MatchedSkills,
		MissingRequiredSkills: rep.MissingRequiredSkills,
		MissingOptionalSkills: rep.MissingOptionalSkills,
		MatchPercentage:       rep.MatchPercentage,
	})
}

func toUsecaseSkills(req dto.MatchRequest) ([]usecase.SkillClaim, []usecase.SkillDemand) {
	possessed := make([]usecase.SkillClaim, 0, len(req.PossessedSkills))
	for _, s := range req.PossessedSkills {
		possessed = append(possessed, usecase.SkillClaim{Name: s.Name, Proficiency: s.Proficiency})
	}
	required := make([]usecase.SkillDemand, 0, len(req.RequiredSkills))
	for _, s := range req.RequiredSkills {
		required = append(required, usecase.SkillDemand{Name: s.Name, Importance: s.Importance})
	}
	return possessed, required
}

func mapMatchingError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid skill entries", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
