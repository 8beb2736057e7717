package service

import (
	"time"

	"dashkeep/internal/errors"

	"github.com/google/uuid"
)

// SessionTTL is the fixed lifetime of every issued token.
const SessionTTL = 7 * 24 * time.Hour

var (
	// ErrTokenExpired means the signature was valid but the expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenMalformed covers bad structure, bad signature, wrong algorithm and bad subject.
	ErrTokenMalformed = errors.New("token malformed")
)

// TokenService issues and verifies session tokens. Verification is pure computation.
type TokenService interface {
	// Issue signs a token binding accountID, valid for SessionTTL.
	Issue(accountID uuid.UUID) (token string, expiresAt time.Time, err error)

	// Verify returns the bound account ID, or ErrTokenExpired / ErrTokenMalformed.
	Verify(token string) (uuid.UUID, error)
}
