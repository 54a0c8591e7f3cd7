package handler

import (
	"strconv"

	"workmatch/internal/catalog"
	"workmatch/internal/delivery/http/middleware"
	"workmatch/internal/pkg/response"
	"workmatch/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillHandler struct {
	uc usecase.SuggestionUsecase
}

type skillResponse struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Category string             `json:"category"`
	Type     catalog.SkillType  `json:"type"`
	Level    catalog.SkillLevel `json:"level,omitempty"`
	Keywords []string           `json:"keywords,omitempty"`
}

type skillFacetResponse struct {
	skillResponse
	Selected bool `json:"selected"`
}

type categoryFacetResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Skills      []skillFacetResponse `json:"skills"`
}

func NewSkillHandler(uc usecase.SuggestionUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/search", h.Search)
	grp.Get("/categories", h.Categories)
	grp.Get("/:id/related", h.Related)
}

// Search suggests catalog skills for a partial query. Authenticated
// callers never see skills they already selected.
func (h *SkillHandler) Search(c fiber.Ctx) error {
	query := c.Query("q")
	limit := parseLimit(c.Query("limit"))

	var items []catalog.Skill
	if userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID); ok {
		var err error
		items, err = h.uc.Suggest(c.Context(), userID, query, limit)
		if err != nil {
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	} else {
		items = h.uc.SuggestAnonymous(query, limit)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toSkillResponses(items))
}

// Categories returns the browsable facet view. The hint query narrows
// it to categories relevant for a job posting's industry; all=true
// returns everything.
func (h *SkillHandler) Categories(c fiber.Ctx) error {
	hint := c.Query("hint")
	all := c.Query("all") == "true"

	userID, _ := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	facets, err := h.uc.Browse(c.Context(), userID, hint, all)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	res := make([]categoryFacetResponse, 0, len(facets))
	for _, f := range facets {
		skills := make([]skillFacetResponse, 0, len(f.Skills))
		for _, sf := range f.Skills {
			skills = append(skills, skillFacetResponse{
				skillResponse: toSkillResponse(sf.Skill),
				Selected:      sf.Selected,
			})
		}
		res = append(res, categoryFacetResponse{ID: f.ID, Name: f.Name, Description: f.Description, Skills: skills})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *SkillHandler) Related(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toSkillResponses(h.uc.Related(id)))
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func toSkillResponse(s catalog.Skill) skillResponse {
	return skillResponse{
		ID:       s.ID,
		Name:     s.Name,
		Category: s.Category,
		Type:     s.Type,
		Level:    s.Level,
		Keywords: s.Keywords,
	}
}

func toSkillResponses(items []catalog.Skill) []skillResponse {
	res := make([]skillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toSkillResponse(it))
	}
	return res
}
