package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestSuggestExcludesSelectedSkills(t *testing.T) {
	repo := newFakeProfileRepo()
	userID := uuid.New()
	repo.skills[userID] = []string{"hgv_class1"}

	profiles := NewProfileUsecase(repo, newFakeCache())
	uc := NewSuggestionUsecase(profiles)

	items, err := uc.Suggest(context.Background(), userID, "hgv", 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	for _, s := range items {
		if s.ID == "hgv_class1" {
			t.Fatalf("already-selected skill suggested again")
		}
	}

	anon := uc.SuggestAnonymous("hgv", 0)
	found := false
	for _, s := range anon {
		if s.ID == "hgv_class1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("anonymous search should not exclude anything")
	}
}

func TestBrowseReflectsSelection(t *testing.T) {
	repo := newFakeProfileRepo()
	userID := uuid.New()
	repo.skills[userID] = []string{"bricklaying"}

	uc := NewSuggestionUsecase(NewProfileUsecase(repo, newFakeCache()))

	facets, err := uc.Browse(context.Background(), userID, "Construction", false)
	if err != nil {
		t.Fatalf("Browse: %v", err)
	}

	seen := false
	for _, f := range facets {
		for _, sf := range f.Skills {
			if sf.Skill.ID == "bricklaying" {
				seen = true
				if !sf.Selected {
					t.Fatalf("selected skill not marked in facet view")
				}
			} else if sf.Selected {
				t.Fatalf("unselected skill %s marked selected", sf.Skill.ID)
			}
		}
	}
	if !seen {
		t.Fatalf("construction hint should surface bricklaying")
	}
}

func TestRelatedPassthrough(t *testing.T) {
	uc := NewSuggestionUsecase(NewProfileUsecase(newFakeProfileRepo(), newFakeCache()))

	rel := uc.Related("hgv_class1")
	if len(rel) == 0 {
		t.Fatalf("hgv_class1 has related skills in the catalog")
	}
	if len(uc.Related("no_such_skill")) != 0 {
		t.Fatalf("unknown id should relate to nothing")
	}
}
