// Package services contains the application services of dashvault: the
// account store, the session manager, blog authoring, and UI preferences.
// Each service owns its business rules and reaches storage through the
// repository layer.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/dashvault/internal/app/models"
	"github.com/dmitrijs2005/dashvault/internal/app/repositories/users"
	"github.com/dmitrijs2005/dashvault/internal/common"
	"github.com/dmitrijs2005/dashvault/internal/dbx"
	"github.com/dmitrijs2005/dashvault/internal/logging"
)

// AccountService is durable CRUD over user records with one enforced
// invariant: no two records share an email. Passwords never reach storage in
// the clear; they are bcrypt-hashed here.
type AccountService struct {
	db  *sql.DB
	log logging.Logger
}

// NewAccountService constructs an AccountService bound to the given DB.
func NewAccountService(db *sql.DB, log logging.Logger) *AccountService {
	return &AccountService{db: db, log: log}
}

func (s *AccountService) getUserRepo(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// Create registers a new account and returns the assigned id.
//
// All three inputs are required (common.ErrValidation otherwise). The email
// is pre-checked against the index so the ordinary duplicate sign-up fails
// before any write; a concurrent duplicate slipping past the pre-check is
// still rejected by the unique index and reported the same way.
func (s *AccountService) Create(ctx context.Context, username, email, password string) (int64, error) {
	if username == "" || email == "" || password == "" {
		return 0, fmt.Errorf("%w: username, email and password are required", common.ErrValidation)
	}

	repo := s.getUserRepo(s.db)

	_, err := repo.GetByEmail(ctx, email)
	if err == nil {
		return 0, common.ErrDuplicateEmail
	}
	if !errors.Is(err, common.ErrNotFound) {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: string(hash)}
	if _, err := repo.Create(ctx, user); err != nil {
		return 0, err
	}

	s.log.Info(ctx, "account created", "id", user.ID, "email", email)
	return user.ID, nil
}

// FindByEmail returns the account with the given email or common.ErrNotFound.
func (s *AccountService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUserRepo(s.db).GetByEmail(ctx, email)
}

// VerifyCredentials checks email/password and returns the matching account.
// Both an unknown email and a wrong password yield common.ErrInvalidCredentials.
func (s *AccountService) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.getUserRepo(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	return user, nil
}

// Update applies a partial update to the account identified by id and
// returns the refreshed record. The read-modify-write runs in a single
// transaction. Unknown id yields common.ErrNotFound; changing the email to
// one held by another account yields common.ErrDuplicateEmail.
func (s *AccountService) Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	var updated *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.getUserRepo(tx)

		user, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if patch.Username != nil {
			user.Username = *patch.Username
		}
		if patch.Email != nil {
			user.Email = *patch.Email
		}
		if patch.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}
			user.PasswordHash = string(hash)
		}

		if err := repo.Update(ctx, user); err != nil {
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "account updated", "id", id)
	return updated, nil
}
