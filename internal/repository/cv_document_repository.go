package repository

import (
	"context"
	"encoding/json"
	"errors"

	"workmatch/internal/database"
	"workmatch/internal/domain/cv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrDocumentNotFound = errors.New("cv document not found")

type CVDocumentRepository interface {
	GetForUser(ctx context.Context, userID uuid.UUID) (cv.Document, error)
	SaveForUser(ctx context.Context, userID uuid.UUID, doc cv.Document) error
}

type PostgresCVDocumentRepository struct {
	db database.DB
}

func NewPostgresCVDocumentRepository(db database.DB) *PostgresCVDocumentRepository {
	return &PostgresCVDocumentRepository{db: db}
}

func (r *PostgresCVDocumentRepository) GetForUser(ctx context.Context, userID uuid.UUID) (cv.Document, error) {
	row := r.db.QueryRow(ctx, `SELECT doc FROM cv_documents WHERE user_id = $1`, userID)

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cv.Document{}, ErrDocumentNotFound
		}
		return cv.Document{}, err
	}

	var doc cv.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return cv.Document{}, err
	}
	return doc, nil
}

func (r *PostgresCVDocumentRepository) SaveForUser(ctx context.Context, userID uuid.UUID, doc cv.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO cv_documents (user_id, doc, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (user_id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		userID, raw,
	)
	return err
}
