package usecase

import (
	"context"

	"workmatch/internal/catalog"

	"github.com/google/uuid"
)

// SuggestionUsecase serves the two entry points for picking skills:
// the free-text search box and the category browser. Both read the
// same stored selection so they never disagree about what is chosen.
type SuggestionUsecase interface {
	Suggest(ctx context.Context, userID uuid.UUID, query string, limit int) ([]catalog.Skill, error)
	SuggestAnonymous(query string, limit int) []catalog.Skill
	Browse(ctx context.Context, userID uuid.UUID, hint string, allCategories bool) ([]catalog.CategoryFacet, error)
	Related(skillID string) []catalog.Skill
}

type Suggestion struct {
	profiles ProfileUsecase
}

func NewSuggestionUsecase(profiles ProfileUsecase) *Suggestion {
	return &Suggestion{profiles: profiles}
}

// Suggest excludes the user's already-selected skills from the
// results; suggesting something already chosen is noise.
func (s *Suggestion) Suggest(ctx context.Context, userID uuid.UUID, query string, limit int) ([]catalog.Skill, error) {
	set, err := s.profiles.SelectionSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return catalog.Search(query, set.Membership(), limit), nil
}

// SuggestAnonymous serves searches before login, with nothing to
// exclude.
func (s *Suggestion) SuggestAnonymous(query string, limit int) []catalog.Skill {
	return catalog.Search(query, nil, limit)
}

func (s *Suggestion) Browse(ctx context.Context, userID uuid.UUID, hint string, allCategories bool) ([]catalog.CategoryFacet, error) {
	set, err := s.profiles.SelectionSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return catalog.Facets(set.Membership(), hint, allCategories), nil
}

func (s *Suggestion) Related(skillID string) []catalog.Skill {
	return catalog.Related(skillID)
}
