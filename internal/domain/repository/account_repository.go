// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"dashkeep/internal/domain/entity"
	"dashkeep/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrProfileNotFound is returned when an account has no profile row.
	ErrProfileNotFound = errors.New("profile not found")
)

// AccountRepository persists login identities.
type AccountRepository interface {
	// FindByID returns ErrAccountNotFound when the id is unknown.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail expects an already normalized email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create fails with domainerrors.ErrDuplicateEmail when the email is taken.
	Create(ctx context.Context, account *entity.Account) error

	// List returns every account ordered by creation time.
	List(ctx context.Context) ([]*entity.Account, error)
}

// ProfileRepository persists the personal data attached to an account.
type ProfileRepository interface {
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Profile, error)

	FindByNationalID(ctx context.Context, nationalID string) (*entity.Profile, error)

	// Create fails with domainerrors.ErrDuplicateNationalID when the national ID is taken.
	Create(ctx context.Context, profile *entity.Profile) error
}
