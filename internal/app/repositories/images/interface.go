package images

import (
	"context"

	"github.com/dmitrijs2005/dashvault/internal/app/models"
)

// Repository stores cover-image blobs, one per blog entry.
type Repository interface {
	Upsert(ctx context.Context, img *models.CoverImage) error
	GetByBlogID(ctx context.Context, blogID string) (*models.CoverImage, error)
	DeleteByBlogID(ctx context.Context, blogID string) error
}
