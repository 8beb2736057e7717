package usecase

import (
	"context"

	"dashkeep/internal/domain/entity"
)

// SessionUsecase resolves a bearer token to the account it was issued for.
type SessionUsecase interface {
	// Authenticate fails with ErrInvalidToken or ErrTokenExpired. An account that
	// no longer exists is reported as ErrInvalidToken.
	Authenticate(ctx context.Context, token string) (*entity.Account, error)
}
