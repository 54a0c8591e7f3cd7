package handler

import (
	"errors"

	"workmatch/internal/delivery/http/middleware"
	"workmatch/internal/pkg/response"
	"workmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PostingHandler struct {
	uc usecase.PostingUsecase
}

type postingHintRequest struct {
	URL string `json:"url"`
}

func NewPostingHandler(uc usecase.PostingUsecase) *PostingHandler {
	return &PostingHandler{uc: uc}
}

func (h *PostingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/postings")
	grp.Post("/hint", h.Hint)
}

// Hint fetches a job posting and reports the industry it reads like,
// plus the catalog categories that industry maps to.
func (h *PostingHandler) Hint(c fiber.Ctx) error {
	var req postingHintRequest
	if err := c.Bind().Body(&req); err != nil || req.URL == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	hint, err := h.uc.FetchHint(c.Context(), req.URL)
	if err != nil {
		if errors.Is(err, usecase.ErrPostingUnreachable) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Posting could not be fetched", nil, err)
		}
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, hint)
}
