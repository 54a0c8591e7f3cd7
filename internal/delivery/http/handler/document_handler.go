package handler

import (
	"errors"

	"workmatch/internal/delivery/http/middleware"
	"workmatch/internal/domain/cv"
	"workmatch/internal/pkg/response"
	"workmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type DocumentHandler struct {
	uc usecase.DocumentUsecase
}

func NewDocumentHandler(uc usecase.DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

func (h *DocumentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/documents/cv")
	grp.Get("/", h.Get)
	grp.Put("/", h.Put)
	grp.Get("/score", h.ScoreStored)
	grp.Post("/score", h.ScoreDraft)
}

func (h *DocumentHandler) Get(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	doc, err := h.uc.GetDocument(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrDocumentNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "No CV document yet", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, doc)
}

// Put stores the document and answers with the fresh completeness
// report, so the editor can render the score without a second call.
func (h *DocumentHandler) Put(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var doc cv.Document
	if err := c.Bind().Body(&doc); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	report, err := h.uc.SaveDocument(c.Context(), userID, doc)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, "Document saved", report)
}

func (h *DocumentHandler) ScoreStored(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	report, err := h.uc.ScoreStored(c.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrDocumentNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "No CV document yet", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, report)
}

// ScoreDraft scores the submitted document without persisting it.
func (h *DocumentHandler) ScoreDraft(c fiber.Ctx) error {
	if _, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID); !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var doc cv.Document
	if err := c.Bind().Body(&doc); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.ScoreDocument(doc))
}
