package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/dashvault/internal/app/models"
	"github.com/dmitrijs2005/dashvault/internal/common"
)

// getMultiline is an indirection used to facilitate testing.
var getMultiline = GetMultiline

func (a *App) printEntries(entries []*models.BlogEntry) {
	if len(entries) == 0 {
		printlnFn("No entries")
		return
	}
	for _, e := range entries {
		printlnFn(fmt.Sprintf("%s  %s  (%s)", e.ID, e.Title, e.CreatedAt.Format("2006-01-02 15:04")))
	}
}

func (a *App) promptEntryID() (string, error) {
	return getSimpleText(a.reader, "Entry id", os.Stdout)
}

// Post creates a new blog entry from interactive input.
func (a *App) Post(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}

	content, err := getMultiline(a.reader, "Content", os.Stdout)
	if err != nil {
		return err
	}

	entry, err := a.blog.Submit(ctx, title, content)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			printlnFn("Title and content are required")
			return err
		}
		a.log.Error(ctx, "submit failed", "error", err.Error())
		return err
	}

	printlnFn("Created entry", entry.ID)
	return nil
}

// Posts lists the active entries.
func (a *App) Posts(ctx context.Context) error {
	entries, err := a.blog.List(ctx, false)
	if err != nil {
		a.log.Error(ctx, "list failed", "error", err.Error())
		return err
	}
	a.printEntries(entries)
	return nil
}

// Archived lists the archived entries.
func (a *App) Archived(ctx context.Context) error {
	entries, err := a.blog.List(ctx, true)
	if err != nil {
		a.log.Error(ctx, "list failed", "error", err.Error())
		return err
	}
	a.printEntries(entries)
	return nil
}

// Edit replaces title and content of an existing entry.
func (a *App) Edit(ctx context.Context) error {
	id, err := a.promptEntryID()
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "New title", os.Stdout)
	if err != nil {
		return err
	}

	content, err := getMultiline(a.reader, "New content", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.blog.Update(ctx, id, title, content); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No such entry:", id)
			return err
		}
		a.log.Error(ctx, "update failed", "error", err.Error())
		return err
	}

	printlnFn("Updated entry", id)
	return nil
}

// Archive moves an entry to the archived list.
func (a *App) Archive(ctx context.Context) error {
	id, err := a.promptEntryID()
	if err != nil {
		return err
	}

	if err := a.blog.Archive(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No such entry:", id)
			return err
		}
		a.log.Error(ctx, "archive failed", "error", err.Error())
		return err
	}

	printlnFn("Archived entry", id)
	return nil
}

// Restore moves an archived entry back to the active list.
func (a *App) Restore(ctx context.Context) error {
	id, err := a.promptEntryID()
	if err != nil {
		return err
	}

	if err := a.blog.Restore(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No such entry:", id)
			return err
		}
		a.log.Error(ctx, "restore failed", "error", err.Error())
		return err
	}

	printlnFn("Restored entry", id)
	return nil
}

// Delete removes an entry and its cover image after confirmation.
func (a *App) Delete(ctx context.Context) error {
	id, err := a.promptEntryID()
	if err != nil {
		return err
	}

	confirm, err := getSimpleText(a.reader, "Type yes to delete "+id, os.Stdout)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		printlnFn("Cancelled")
		return nil
	}

	if err := a.blog.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			printlnFn("No such entry:", id)
			return err
		}
		a.log.Error(ctx, "delete failed", "error", err.Error())
		return err
	}

	printlnFn("Deleted entry", id)
	return nil
}

// Search lists active entries whose title contains the query.
func (a *App) Search(ctx context.Context) error {
	query, err := getSimpleText(a.reader, "Search query", os.Stdout)
	if err != nil {
		return err
	}

	entries, err := a.blog.Search(ctx, query)
	if err != nil {
		a.log.Error(ctx, "search failed", "error", err.Error())
		return err
	}
	a.printEntries(entries)
	return nil
}

// Export writes the active entries to a JSON file in the configured
// export directory.
func (a *App) Export(ctx context.Context) error {
	path, err := a.blog.Export(ctx, a.config.ExportDir)
	if err != nil {
		a.log.Error(ctx, "export failed", "error", err.Error())
		return err
	}

	printlnFn("Exported to", path)
	return nil
}

// Open switches the remembered dashboard section.
func (a *App) Open(ctx context.Context) error {
	section, err := getSimpleText(a.reader, "Section name", os.Stdout)
	if err != nil {
		return err
	}
	if section == "" {
		return nil
	}

	if err := a.prefs.SetSelectedMenuItem(ctx, section); err != nil {
		a.log.Error(ctx, "saving selected section failed", "error", err.Error())
		return err
	}

	a.section = section
	return nil
}
