package blogs

import (
	"context"

	"github.com/dmitrijs2005/dashvault/internal/app/models"
)

// Repository persists authored blog entries, active and archived alike.
type Repository interface {
	Create(ctx context.Context, entry *models.BlogEntry) error
	GetByID(ctx context.Context, id string) (*models.BlogEntry, error)
	List(ctx context.Context, archived bool) ([]*models.BlogEntry, error)
	SearchByTitle(ctx context.Context, query string) ([]*models.BlogEntry, error)
	Update(ctx context.Context, entry *models.BlogEntry) error
	SetArchived(ctx context.Context, id string, archived bool) error
	Delete(ctx context.Context, id string) error
}
