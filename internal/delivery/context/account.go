package context

import (
	"dashkeep/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyAccountID is the echo.Context key for the authenticated account ID.
	KeyAccountID ContextKey = "account_id"

	// KeyAccountEmail is the echo.Context key for the authenticated account email.
	KeyAccountEmail ContextKey = "account_email"
)

// SetAccount records the authenticated identity. Only the auth gate calls it.
func SetAccount(c echo.Context, account *entity.Account) {
	c.Set(string(KeyAccountID), account.ID)
	c.Set(string(KeyAccountEmail), account.Email)
}

// GetAccountID returns the authenticated account ID.
func GetAccountID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyAccountID)).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}

	return id, true
}

// GetAccountEmail returns the authenticated account email.
func GetAccountEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(string(KeyAccountEmail)).(string)

	return email, ok && email != ""
}
