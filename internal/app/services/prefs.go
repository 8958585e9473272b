package services

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/dmitrijs2005/dashvault/internal/app/repositories/kvstore"
	"github.com/dmitrijs2005/dashvault/internal/dbx"
)

// Simple-store keys for UI preferences.
const (
	SelectedMenuItemKey = "selectedMenuItem"
	SidebarOpenKey      = "isSidebarOpen"
)

// PrefsService persists small UI preferences between runs: the selected
// menu section and whether the sidebar is expanded.
type PrefsService struct {
	db *sql.DB
}

func NewPrefsService(db *sql.DB) *PrefsService {
	return &PrefsService{db: db}
}

func (s *PrefsService) getKVRepo(db dbx.DBTX) kvstore.Repository {
	return kvstore.NewSQLiteRepository(db)
}

// SelectedMenuItem returns the stored section, or fallback when none is set.
func (s *PrefsService) SelectedMenuItem(ctx context.Context, fallback string) (string, error) {
	v, ok, err := s.getKVRepo(s.db).Get(ctx, SelectedMenuItemKey)
	if err != nil {
		return "", err
	}
	if !ok || v == "" {
		return fallback, nil
	}
	return v, nil
}

func (s *PrefsService) SetSelectedMenuItem(ctx context.Context, item string) error {
	return s.getKVRepo(s.db).Set(ctx, SelectedMenuItemKey, item)
}

// SidebarOpen reports the stored flag. Absent or unparsable values fall back
// to true, the dashboard's initial state.
func (s *PrefsService) SidebarOpen(ctx context.Context) (bool, error) {
	v, ok, err := s.getKVRepo(s.db).Get(ctx, SidebarOpenKey)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	open, parseErr := strconv.ParseBool(v)
	if parseErr != nil {
		return true, nil
	}
	return open, nil
}

func (s *PrefsService) SetSidebarOpen(ctx context.Context, open bool) error {
	return s.getKVRepo(s.db).Set(ctx, SidebarOpenKey, strconv.FormatBool(open))
}
