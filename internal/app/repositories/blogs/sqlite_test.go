package blogs

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
CREATE TABLE blogs (
  id         TEXT PRIMARY KEY,
  title      TEXT NOT NULL,
  content    TEXT NOT NULL,
  archived   INTEGER NOT NULL DEFAULT 0,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	require.NoError(t, err)
	return db
}

func seed(t *testing.T, r *SQLiteRepository, id, title string, archived bool) *models.BlogEntry {
	t.Helper()
	e := &models.BlogEntry{ID: id, Title: title, Content: "<p>" + title + "</p>", Archived: archived}
	require.NoError(t, r.Create(context.Background(), e))
	return e
}

func TestCreateAndGet(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	seed(t, r, "b1", "first post", false)

	got, err := r.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "first post", got.Title)
	assert.Equal(t, "<p>first post</p>", got.Content)
	assert.False(t, got.Archived)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetByID_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestList_SplitsByArchivedFlag(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	seed(t, r, "a", "active one", false)
	seed(t, r, "b", "active two", false)
	seed(t, r, "c", "archived one", true)

	active, err := r.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, active, 2)

	archived, err := r.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, "c", archived[0].ID)
}

func TestSearchByTitle(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	seed(t, r, "a", "release notes", false)
	seed(t, r, "b", "weekly notes", false)
	seed(t, r, "c", "roadmap", false)
	seed(t, r, "d", "archived notes", true)

	got, err := r.SearchByTitle(ctx, "notes")
	require.NoError(t, err)
	require.Len(t, got, 2, "archived entries are excluded from search")

	ids := []string{got[0].ID, got[1].ID}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestUpdate(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	e := seed(t, r, "a", "draft", false)

	e.Title = "final"
	e.Content = "<p>done</p>"
	require.NoError(t, r.Update(ctx, e))

	got, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, "<p>done</p>", got.Content)

	err = r.Update(ctx, &models.BlogEntry{ID: "missing", Title: "x", Content: "y"})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestSetArchived_RoundTrip(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	seed(t, r, "a", "post", false)

	require.NoError(t, r.SetArchived(ctx, "a", true))
	got, err := r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.True(t, got.Archived)

	require.NoError(t, r.SetArchived(ctx, "a", false))
	got, err = r.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.False(t, got.Archived)

	require.ErrorIs(t, r.SetArchived(ctx, "missing", true), common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	seed(t, r, "a", "post", false)

	require.NoError(t, r.Delete(ctx, "a"))
	_, err := r.GetByID(ctx, "a")
	require.ErrorIs(t, err, common.ErrNotFound)

	require.ErrorIs(t, r.Delete(ctx, "a"), common.ErrNotFound)
}
