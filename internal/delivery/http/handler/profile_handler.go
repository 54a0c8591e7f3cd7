package handler

import (
	"errors"

	"workmatch/internal/delivery/http/middleware"
	"workmatch/internal/pkg/response"
	"workmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type saveSelectionRequest struct {
	SkillIDs []string `json:"skill_ids"`
}

type toggleSkillRequest struct {
	SkillID string `json:"skill_id"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/profile")
	grp.Get("/skills", h.GetSkills)
	grp.Put("/skills", h.PutSkills)
	grp.Post("/skills/toggle", h.ToggleSkill)
}

func (h *ProfileHandler) GetSkills(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.GetSelection(c.Context(), userID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, selectionData(items))
}

// PutSkills replaces the whole selection. Duplicates collapse and ids
// the catalog does not know are dropped from the echoed result.
func (h *ProfileHandler) PutSkills(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req saveSelectionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.SaveSelection(c.Context(), userID, req.SkillIDs)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, "Selection saved", selectionData(items))
}

func (h *ProfileHandler) ToggleSkill(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req toggleSkillRequest
	if err := c.Bind().Body(&req); err != nil || req.SkillID == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.ToggleSkill(c.Context(), userID, req.SkillID)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Unknown skill id", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, selectionData(items))
}

func selectionData(items []usecase.SelectedSkill) map[string]any {
	return map[string]any{
		"count":  len(items),
		"skills": items,
	}
}
