// Package images persists cover-image blobs in the embedded database.
package images

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/dashvault/internal/app/models"
	"github.com/dmitrijs2005/dashvault/internal/common"
	"github.com/dmitrijs2005/dashvault/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Upsert inserts the image or replaces the one already attached to the entry.
func (r *SQLiteRepository) Upsert(ctx context.Context, img *models.CoverImage) error {
	if img.CreatedAt.IsZero() {
		img.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO images (id, blog_id, name, data, created_at)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(blog_id) DO UPDATE SET name = excluded.name,
				data = excluded.data,
				created_at = excluded.created_at`

	_, err := r.db.ExecContext(ctx, query, img.ID, img.BlogID, img.Name, img.Data, img.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert image: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByBlogID(ctx context.Context, blogID string) (*models.CoverImage, error) {
	query := `SELECT id, blog_id, name, data, created_at FROM images WHERE blog_id = ?`

	img := &models.CoverImage{}
	err := r.db.QueryRowContext(ctx, query, blogID).Scan(
		&img.ID, &img.BlogID, &img.Name, &img.Data, &img.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select image: %w", err)
	}
	return img, nil
}

func (r *SQLiteRepository) DeleteByBlogID(ctx context.Context, blogID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM images WHERE blog_id = ?`, blogID)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
