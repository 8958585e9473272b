package users

import (
	"context"

	"github.com/dmitrijs2005/dashvault/internal/app/models"
)

// Repository is durable CRUD over user records. Implementations must enforce
// email uniqueness and report violations as common.ErrDuplicateEmail.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}
