package uploads

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/legalease/legallite/internal/common"
	"github.com/legalease/legallite/internal/dbx"
	"github.com/legalease/legallite/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, upload *models.Upload) (*models.Upload, error) {

	query :=
		`INSERT INTO uploads (user_email, filename, summary, storage_key)
         VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		upload.UserEmail, upload.Filename, upload.Summary, upload.StorageKey).
		Scan(&upload.ID, &upload.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return upload, nil
}

// GetByID fetches one record scoped to its owner, so a user can never
// address another user's upload by guessing ids.
func (r *PostgresRepository) GetByID(ctx context.Context, email, id string) (*models.Upload, error) {

	query :=
		`SELECT id, user_email, filename, summary, storage_key, created_at FROM uploads
		 WHERE user_email = $1 AND id = $2
		 `

	u := &models.Upload{}
	err := r.db.QueryRowContext(ctx, query, email, id).
		Scan(&u.ID, &u.UserEmail, &u.Filename, &u.Summary, &u.StorageKey, &u.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return u, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, email string) ([]*models.Upload, error) {
	query :=
		`SELECT id, user_email, filename, summary, storage_key, created_at FROM uploads
		 WHERE user_email = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Upload{}
	for rows.Next() {
		u := &models.Upload{}
		if err := rows.Scan(&u.ID, &u.UserEmail, &u.Filename, &u.Summary, &u.StorageKey, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
