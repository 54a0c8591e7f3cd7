package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestProfileSaveAndGetSelection(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := NewProfileUsecase(repo, newFakeCache())
	userID := uuid.New()

	saved, err := uc.SaveSelection(context.Background(), userID, []string{"hgv_class1", "forklift_counterbalance", "hgv_class1"})
	if err != nil {
		t.Fatalf("SaveSelection: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("expected duplicate to collapse, got %d entries", len(saved))
	}
	if saved[0].ID != "hgv_class1" || saved[1].ID != "forklift_counterbalance" {
		t.Fatalf("insertion order not preserved: %+v", saved)
	}
	if saved[0].Name == "" || saved[0].Category == "" {
		t.Fatalf("selection not resolved against catalog: %+v", saved[0])
	}

	got, err := uc.GetSelection(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetSelection: %v", err)
	}
	if len(got) != 2 || got[0].ID != "hgv_class1" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestProfileSelectionDropsUnknownStoredIDs(t *testing.T) {
	repo := newFakeProfileRepo()
	userID := uuid.New()
	repo.skills[userID] = []string{"hgv_class1", "retired_skill_id", "plumbing"}

	uc := NewProfileUsecase(repo, newFakeCache())
	got, err := uc.GetSelection(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetSelection: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected unknown stored id to be dropped, got %+v", got)
	}
	if got[0].ID != "hgv_class1" || got[1].ID != "plumbing" {
		t.Fatalf("wrong survivors: %+v", got)
	}
}

func TestProfileToggleSkill(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := NewProfileUsecase(repo, newFakeCache())
	userID := uuid.New()

	after, err := uc.ToggleSkill(context.Background(), userID, "welding")
	if err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	if len(after) != 1 || after[0].ID != "welding" {
		t.Fatalf("toggle on result: %+v", after)
	}

	after, err = uc.ToggleSkill(context.Background(), userID, "welding")
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	if len(after) != 0 {
		t.Fatalf("toggle off should empty the selection, got %+v", after)
	}
}

func TestProfileToggleUnknownSkill(t *testing.T) {
	uc := NewProfileUsecase(newFakeProfileRepo(), newFakeCache())

	_, err := uc.ToggleSkill(context.Background(), uuid.New(), "no_such_skill")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProfileWriteInvalidatesCache(t *testing.T) {
	repo := newFakeProfileRepo()
	cache := newFakeCache()
	uc := NewProfileUsecase(repo, cache)
	userID := uuid.New()

	if _, err := uc.GetSelection(context.Background(), userID); err != nil {
		t.Fatalf("GetSelection: %v", err)
	}
	if _, ok := cache.values[cacheProfileKey(userID)]; !ok {
		t.Fatalf("read should populate the cache")
	}

	if _, err := uc.SaveSelection(context.Background(), userID, []string{"plumbing"}); err != nil {
		t.Fatalf("SaveSelection: %v", err)
	}
	if cache.invalidated == 0 {
		t.Fatalf("write should invalidate the user's cache entries")
	}

	// Next read must see the new selection, not the stale cache.
	got, err := uc.GetSelection(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetSelection after save: %v", err)
	}
	if len(got) != 1 || got[0].ID != "plumbing" {
		t.Fatalf("stale read after write: %+v", got)
	}
}

func TestProfileRepoErrorSurfacesAsInternal(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.err = errors.New("connection refused")

	uc := NewProfileUsecase(repo, newFakeCache())
	if _, err := uc.GetSelection(context.Background(), uuid.New()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
