package usecase

import (
	"context"

	"workmatch/internal/catalog"
	"workmatch/internal/repository"
	"workmatch/internal/selection"

	"github.com/google/uuid"
)

// SelectedSkill is one resolved entry of a stored selection set.
type SelectedSkill struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	Category string             `json:"category"`
	Type     catalog.SkillType  `json:"type"`
	Level    catalog.SkillLevel `json:"level,omitempty"`
}

type ProfileUsecase interface {
	GetSelection(ctx context.Context, userID uuid.UUID) ([]SelectedSkill, error)
	SaveSelection(ctx context.Context, userID uuid.UUID, skillIDs []string) ([]SelectedSkill, error)
	ToggleSkill(ctx context.Context, userID uuid.UUID, skillID string) ([]SelectedSkill, error)
	SelectionSet(ctx context.Context, userID uuid.UUID) (*selection.Set, error)
}

type Profile struct {
	repo  repository.ProfileSkillRepository
	cache Cache
}

func NewProfileUsecase(repo repository.ProfileSkillRepository, cache Cache) *Profile {
	return &Profile{repo: repo, cache: cache}
}

// SelectionSet reconstructs the selection set from storage, dropping
// ids the current catalog no longer knows. The tolerance is the
// forward/backward compatibility policy for saved profiles, not a
// data error.
func (p *Profile) SelectionSet(ctx context.Context, userID uuid.UUID) (*selection.Set, error) {
	ids, err := p.loadIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	set := selection.New()
	for _, id := range ids {
		if _, ok := catalog.ByID(id); ok {
			set.Add(id)
		}
	}
	return set, nil
}

func (p *Profile) GetSelection(ctx context.Context, userID uuid.UUID) ([]SelectedSkill, error) {
	set, err := p.SelectionSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return resolveSelection(set), nil
}

func (p *Profile) SaveSelection(ctx context.Context, userID uuid.UUID, skillIDs []string) ([]SelectedSkill, error) {
	set := selection.New(skillIDs...)
	if err := p.persist(ctx, userID, set); err != nil {
		return nil, err
	}
	return resolveSelection(set), nil
}

func (p *Profile) ToggleSkill(ctx context.Context, userID uuid.UUID, skillID string) ([]SelectedSkill, error) {
	if _, ok := catalog.ByID(skillID); !ok {
		return nil, ErrInvalidInput
	}

	set, err := p.SelectionSet(ctx, userID)
	if err != nil {
		return nil, err
	}
	set.Toggle(skillID)

	if err := p.persist(ctx, userID, set); err != nil {
		return nil, err
	}
	return resolveSelection(set), nil
}

func (p *Profile) loadIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var cached []string
	if p.cache != nil {
		if hit, err := p.cache.GetJSON(ctx, cacheProfileKey(userID), &cached); err == nil && hit {
			return cached, nil
		}
	}

	ids, err := p.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	if p.cache != nil {
		_ = p.cache.SetJSON(ctx, cacheProfileKey(userID), ids, 0)
	}
	return ids, nil
}

func (p *Profile) persist(ctx context.Context, userID uuid.UUID, set *selection.Set) error {
	if err := p.repo.ReplaceForUser(ctx, userID, set.IDs()); err != nil {
		return ErrInternal
	}
	if p.cache != nil {
		_ = p.cache.InvalidateUser(ctx, userID)
	}
	return nil
}

func resolveSelection(set *selection.Set) []SelectedSkill {
	ids := set.IDs()
	out := make([]SelectedSkill, 0, len(ids))
	for _, id := range ids {
		s, ok := catalog.ByID(id)
		if !ok {
			continue
		}
		out = append(out, SelectedSkill{ID: s.ID, Name: s.Name, Category: s.Category, Type: s.Type, Level: s.Level})
	}
	return out
}

func cacheProfileKey(userID uuid.UUID) string {
	return "profile:skills:" + userID.String()
}
