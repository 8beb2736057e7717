// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"dashkeep/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput carries the raw registration fields; normalization happens in the use case.
type RegisterInput struct {
	FullName   string
	Email      string
	Password   string
	Phone      string
	NationalID string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SessionOutput is returned by every operation that opens a session.
type SessionOutput struct {
	Token     string
	ExpiresAt time.Time
	Account   *entity.Account
	Profile   *entity.Profile
}

// RegisterOutput returns the new account together with its first session.
type RegisterOutput = SessionOutput

// LoginOutput returns the session opened by a successful login.
type LoginOutput = SessionOutput

// ProfileOutput pairs an account with its profile.
type ProfileOutput struct {
	Account *entity.Account
	Profile *entity.Profile
}

// AccountUsecase defines account registration, login and profile lookup.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, accountID uuid.UUID) (*ProfileOutput, error)
}
