package usecase

import (
	"context"
	"errors"

	"workmatch/internal/domain/cv"
	"workmatch/internal/repository"
	"workmatch/internal/scoring"

	"github.com/google/uuid"
)

var ErrDocumentNotFound = errors.New("document not found")

type ScoreReport struct {
	Score  int             `json:"score"`
	Band   string          `json:"band"`
	Checks []scoring.Check `json:"checks"`
}

// ScoreNotifier pushes a fresh score to whoever is watching the
// user's document, typically open websocket connections.
type ScoreNotifier interface {
	ScoreUpdated(userID uuid.UUID, report ScoreReport)
}

type DocumentUsecase interface {
	GetDocument(ctx context.Context, userID uuid.UUID) (cv.Document, error)
	SaveDocument(ctx context.Context, userID uuid.UUID, doc cv.Document) (ScoreReport, error)
	ScoreDocument(doc cv.Document) ScoreReport
	ScoreStored(ctx context.Context, userID uuid.UUID) (ScoreReport, error)
}

type Document struct {
	repo     repository.CVDocumentRepository
	cache    Cache
	notifier ScoreNotifier
}

func NewDocumentUsecase(repo repository.CVDocumentRepository, cache Cache, notifier ScoreNotifier) *Document {
	return &Document{repo: repo, cache: cache, notifier: notifier}
}

func (d *Document) GetDocument(ctx context.Context, userID uuid.UUID) (cv.Document, error) {
	var cached cv.Document
	if d.cache != nil {
		if hit, err := d.cache.GetJSON(ctx, cacheDocumentKey(userID), &cached); err == nil && hit {
			return cached, nil
		}
	}

	doc, err := d.repo.GetForUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return cv.Document{}, ErrDocumentNotFound
		}
		return cv.Document{}, ErrInternal
	}

	if d.cache != nil {
		_ = d.cache.SetJSON(ctx, cacheDocumentKey(userID), doc, 0)
	}
	return doc, nil
}

// SaveDocument persists the document, rescores it, and pushes the new
// score to the user's live connections.
func (d *Document) SaveDocument(ctx context.Context, userID uuid.UUID, doc cv.Document) (ScoreReport, error) {
	if err := d.repo.SaveForUser(ctx, userID, doc); err != nil {
		return ScoreReport{}, ErrInternal
	}
	if d.cache != nil {
		_ = d.cache.InvalidateUser(ctx, userID)
	}

	report := d.ScoreDocument(doc)
	if d.notifier != nil {
		d.notifier.ScoreUpdated(userID, report)
	}
	return report, nil
}

// ScoreDocument is pure; an unsaved draft can be scored without
// touching storage.
func (d *Document) ScoreDocument(doc cv.Document) ScoreReport {
	res := scoring.Evaluate(doc)
	return ScoreReport{Score: res.Score, Band: scoring.Band(res.Score), Checks: res.Checks}
}

func (d *Document) ScoreStored(ctx context.Context, userID uuid.UUID) (ScoreReport, error) {
	var cached ScoreReport
	if d.cache != nil {
		if hit, err := d.cache.GetJSON(ctx, cacheScoreKey(userID), &cached); err == nil && hit {
			return cached, nil
		}
	}

	doc, err := d.GetDocument(ctx, userID)
	if err != nil {
		return ScoreReport{}, err
	}

	report := d.ScoreDocument(doc)
	if d.cache != nil {
		_ = d.cache.SetJSON(ctx, cacheScoreKey(userID), report, 0)
	}
	return report, nil
}

func cacheDocumentKey(userID uuid.UUID) string {
	return "document:cv:" + userID.String()
}

func cacheScoreKey(userID uuid.UUID) string {
	return "document:score:" + userID.String()
}
