package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/dashvault/internal/logging"

	_ "modernc.org/sqlite"
)

// setupDB opens a fresh in-memory store with the full schema.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// keep a single connection so every query sees the same :memory: database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id            INTEGER PRIMARY KEY AUTOINCREMENT,
  username      TEXT NOT NULL,
  email         TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX idx_users_email ON users (email);

CREATE TABLE kvstore (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);

CREATE TABLE blogs (
  id         TEXT PRIMARY KEY,
  title      TEXT NOT NULL,
  content    TEXT NOT NULL,
  archived   INTEGER NOT NULL DEFAULT 0,
  created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

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

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func strPtr(s string) *string { return &s }

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

func mustCreateUser(t *testing.T, svc *AccountService, username, email, password string) int64 {
	t.Helper()
	id, err := svc.Create(context.Background(), username, email, password)
	require.NoError(t, err)
	return id
}
