package images

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/dashvault/internal/app/models"
	"github.com/dmitrijs2005/dashvault/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE images (
  id         TEXT PRIMARY KEY,
  blog_id    TEXT NOT NULL UNIQUE,
  name       TEXT NOT NULL DEFAULT '',
  data       BLOB NOT NULL,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	require.NoError(t, err)
	return db
}

func TestUpsert_InsertAndReplace(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &models.CoverImage{
		ID: "i1", BlogID: "b1", Name: "cover.png", Data: []byte{0x89, 0x50},
	}))

	got, err := r.GetByBlogID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "cover.png", got.Name)
	assert.Equal(t, []byte{0x89, 0x50}, got.Data)

	// second upsert for the same entry replaces the blob
	require.NoError(t, r.Upsert(ctx, &models.CoverImage{
		ID: "i2", BlogID: "b1", Name: "new.jpg", Data: []byte{0xff, 0xd8},
	}))

	got, err = r.GetByBlogID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "new.jpg", got.Name)
	assert.Equal(t, []byte{0xff, 0xd8}, got.Data)
}

func TestGetByBlogID_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByBlogID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteByBlogID(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Upsert(ctx, &models.CoverImage{ID: "i1", BlogID: "b1", Data: []byte{1}}))
	require.NoError(t, r.DeleteByBlogID(ctx, "b1"))

	_, err := r.GetByBlogID(ctx, "b1")
	require.ErrorIs(t, err, common.ErrNotFound)

	// deleting again is a no-op
	require.NoError(t, r.DeleteByBlogID(ctx, "b1"))
}
