package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrijs2005/dashvault/internal/app/models"
	"github.com/dmitrijs2005/dashvault/internal/app/repositories/blogs"
	"github.com/dmitrijs2005/dashvault/internal/app/repositories/images"
	"github.com/dmitrijs2005/dashvault/internal/common"
	"github.com/dmitrijs2005/dashvault/internal/dbx"
	"github.com/dmitrijs2005/dashvault/internal/filex"
	"github.com/dmitrijs2005/dashvault/internal/logging"
)

// ExportFileName is the file written by Export, matching the document the
// dashboard offers for download.
const ExportFileName = "blog_data.json"

// BlogService is the authoring workflow: submit, edit, archive/restore,
// delete, search, and JSON export. Entry content arrives as rich-text-editor
// HTML and is sanitized before it is persisted.
type BlogService struct {
	db     *sql.DB
	log    logging.Logger
	policy *bluemonday.Policy
}

// NewBlogService constructs a BlogService bound to the given DB.
func NewBlogService(db *sql.DB, log logging.Logger) *BlogService {
	return &BlogService{db: db, log: log, policy: bluemonday.UGCPolicy()}
}

func (s *BlogService) getBlogRepo(db dbx.DBTX) blogs.Repository {
	return blogs.NewSQLiteRepository(db)
}

func (s *BlogService) getImageRepo(db dbx.DBTX) images.Repository {
	return images.NewSQLiteRepository(db)
}

// Submit creates a new active entry. Title and content are both required.
func (s *BlogService) Submit(ctx context.Context, title, content string) (*models.BlogEntry, error) {
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", common.ErrValidation)
	}

	entry := &models.BlogEntry{
		ID:      uuid.NewString(),
		Title:   title,
		Content: s.policy.Sanitize(content),
	}

	if err := s.getBlogRepo(s.db).Create(ctx, entry); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "blog entry submitted", "id", entry.ID, "title", entry.Title)
	return entry, nil
}

// List returns the active or the archived entries.
func (s *BlogService) List(ctx context.Context, archived bool) ([]*models.BlogEntry, error) {
	return s.getBlogRepo(s.db).List(ctx, archived)
}

// Search returns active entries whose title contains query.
func (s *BlogService) Search(ctx context.Context, query string) ([]*models.BlogEntry, error) {
	return s.getBlogRepo(s.db).SearchByTitle(ctx, query)
}

// Update replaces title and content of an existing entry.
func (s *BlogService) Update(ctx context.Context, id, title, content string) (*models.BlogEntry, error) {
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", common.ErrValidation)
	}

	repo := s.getBlogRepo(s.db)

	entry, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Title = title
	entry.Content = s.policy.Sanitize(content)
	if err := repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Archive moves an entry to the archived list.
func (s *BlogService) Archive(ctx context.Context, id string) error {
	if err := s.getBlogRepo(s.db).SetArchived(ctx, id, true); err != nil {
		return err
	}
	s.log.Info(ctx, "blog entry archived", "id", id)
	return nil
}

// Restore moves an archived entry back to the active list.
func (s *BlogService) Restore(ctx context.Context, id string) error {
	if err := s.getBlogRepo(s.db).SetArchived(ctx, id, false); err != nil {
		return err
	}
	s.log.Info(ctx, "blog entry restored", "id", id)
	return nil
}

// Delete removes an entry together with its cover image, atomically.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.getImageRepo(tx).DeleteByBlogID(ctx, id); err != nil {
			return err
		}
		return s.getBlogRepo(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "blog entry deleted", "id", id)
	return nil
}

// AttachCover stores (or replaces) the cover image of an entry.
func (s *BlogService) AttachCover(ctx context.Context, blogID, name string, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: image data is empty", common.ErrValidation)
	}

	// make sure the entry exists before accepting the blob
	if _, err := s.getBlogRepo(s.db).GetByID(ctx, blogID); err != nil {
		return err
	}

	return s.getImageRepo(s.db).Upsert(ctx, &models.CoverImage{
		ID:     uuid.NewString(),
		BlogID: blogID,
		Name:   name,
		Data:   data,
	})
}

// Cover returns the cover image of an entry or common.ErrNotFound.
func (s *BlogService) Cover(ctx context.Context, blogID string) (*models.CoverImage, error) {
	return s.getImageRepo(s.db).GetByBlogID(ctx, blogID)
}

// exportedEntry mirrors the JSON document the dashboard produces.
type exportedEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Export writes the active entries as pretty-printed JSON into dir and
// returns the full path of the written file.
func (s *BlogService) Export(ctx context.Context, dir string) (string, error) {
	entries, err := s.List(ctx, false)
	if err != nil {
		return "", err
	}

	out := make([]exportedEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, exportedEntry{ID: e.ID, Title: e.Title, Content: e.Content, CreatedAt: e.CreatedAt})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}

	absDir, err := filex.EnsureDir(dir)
	if err != nil {
		return "", err
	}

	path := filepath.Join(absDir, ExportFileName)
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	s.log.Info(ctx, "blog entries exported", "path", path, "count", len(out))
	return path, nil
}
