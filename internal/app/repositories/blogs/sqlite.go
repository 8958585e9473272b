// Package blogs persists blog entries in the embedded database. The archived
// flag keeps one table for both the active and the archived list.
package blogs

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

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, e *models.BlogEntry) error {
	now := time.Now().UTC()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}

	query := `INSERT INTO blogs (id, title, content, archived, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		e.ID, e.Title, e.Content, e.Archived, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert blog entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.BlogEntry, error) {
	query := `SELECT id, title, content, archived, created_at, updated_at FROM blogs WHERE id = ?`

	e := &models.BlogEntry{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Content, &e.Archived, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select blog entry: %w", err)
	}
	return e, nil
}

// List returns either the active or the archived entries, oldest first.
func (r *SQLiteRepository) List(ctx context.Context, archived bool) ([]*models.BlogEntry, error) {
	query := `SELECT id, title, content, archived, created_at, updated_at FROM blogs
			WHERE archived = ? ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, archived)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// SearchByTitle returns active entries whose title contains query.
func (r *SQLiteRepository) SearchByTitle(ctx context.Context, query string) ([]*models.BlogEntry, error) {
	q := `SELECT id, title, content, archived, created_at, updated_at FROM blogs
			WHERE archived = 0 AND title LIKE '%' || ? || '%' ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, q, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search blog entries: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]*models.BlogEntry, error) {
	var result []*models.BlogEntry
	for rows.Next() {
		e := &models.BlogEntry{}
		if err := rows.Scan(&e.ID, &e.Title, &e.Content, &e.Archived, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blog row: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate blog rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, e *models.BlogEntry) error {
	e.UpdatedAt = time.Now().UTC()

	query := `UPDATE blogs SET title = ?, content = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, e.Title, e.Content, e.UpdatedAt, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update blog entry: %w", err)
	}
	return requireOneRow(result)
}

func (r *SQLiteRepository) SetArchived(ctx context.Context, id string, archived bool) error {
	query := `UPDATE blogs SET archived = ?, updated_at = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, archived, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to set archived flag: %w", err)
	}
	return requireOneRow(result)
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blogs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog entry: %w", err)
	}
	return requireOneRow(result)
}

func requireOneRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return common.ErrNotFound
	}
	return nil
}
