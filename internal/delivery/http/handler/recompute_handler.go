package handler

import (
	"errors"
	"time"

	"skillmatch/internal/delivery/http/dto"
	"skillmatch/internal/delivery/http/middleware"
	"skillmatch/internal/pkg/response"
	"skillmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecomputeHandler struct {
	uc usecase.MatchStoreUsecase
}

func NewRecomputeHandler(uc usecase.MatchStoreUsecase) *RecomputeHandler {
	return &RecomputeHandler{uc: uc}
}

func (h *RecomputeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/subjects/:subject_id/matches")
	grp.Get("/", h.ListMatches)
	grp.Post("/", h.RecordMatch)
	grp.Post("/recompute", h.Recompute)
}

func (h *RecomputeHandler) RecordMatch(c fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("subject_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req dto.RecordMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	id, err := h.uc.RecordMatch(c.Context(), subjectID, req.TargetID, req.Score)
	if err != nil {
		return mapMatchStoreError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.RecordMatchResponse{ID: id})
}

func (h *RecomputeHandler) ListMatches(c fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("subject_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	matches, err := h.uc.ListMatchesForSubject(c.Context(), subjectID)
	if err != nil {
		return mapMatchStoreError(err)
	}

	out := make([]dto.MatchResultResponse, 0, len(matches))
	for _, m := range matches {
		out = append(out, dto.MatchResultResponse{
			SubjectID:  m.SubjectID,
			TargetID:   m.TargetID,
			Score:      m.Score,
			ComputedAt: m.ComputedAt.UTC().Format(time.RFC3339),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapMatchStoreError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func (h *RecomputeHandler) Recompute(c fiber.Ctx) error {
	subjectID, err := uuid.Parse(c.Params("subject_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	res, err := h.uc.RecomputeMatchesForSubject(c.Context(), subjectID)
	if err != nil {
		return mapMatchStoreError(err)
	}

	out := dto.RecomputeResponse{
		Succeeded: make([]dto.MatchResultResponse, 0, len(res.Succeeded)),
		Failed:    res.Failed,
	}
	for _, m := range res.Succeeded {
		out.Succeeded = append(out.Succeeded, dto.MatchResultResponse{
			SubjectID:  m.SubjectID,
			TargetID:   m.TargetID,
			Score:      m.Score,
			ComputedAt: m.ComputedAt.UTC().Format(time.RFC3339),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
