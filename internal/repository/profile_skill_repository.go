package repository

import (
	"context"

	"workmatch/internal/database"

	"github.com/google/uuid"
)

// ProfileSkillRepository persists a selection set as an ordered
// sequence of skill-id strings. Whether those ids still resolve
// against the current catalog is the caller's concern; old ids are
// kept verbatim here.
type ProfileSkillRepository interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]string, error)
	ReplaceForUser(ctx context.Context, userID uuid.UUID, skillIDs []string) error
}

type PostgresProfileSkillRepository struct {
	db database.DB
}

func NewPostgresProfileSkillRepository(db database.DB) *PostgresProfileSkillRepository {
	return &PostgresProfileSkillRepository{db: db}
}

func (r *PostgresProfileSkillRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT skill_id FROM profile_skills WHERE user_id = $1 ORDER BY position ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// ReplaceForUser writes the whole selection in one transaction; a
// save replaces the previous set rather than diffing against it.
func (r *PostgresProfileSkillRepository) ReplaceForUser(ctx context.Context, userID uuid.UUID, skillIDs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM profile_skills WHERE user_id = $1`, userID); err != nil {
		return err
	}
	for i, sid := range skillIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO profile_skills (user_id, skill_id, position) VALUES ($1, $2, $3)`,
			userID, sid, i,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
