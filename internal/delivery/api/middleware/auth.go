package middleware

import (
	"strings"

	deliverycontext "dashkeep/internal/delivery/context"
	domainerrors "dashkeep/internal/domain/errors"
	"dashkeep/internal/infra/metrics"
	"dashkeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "bearer "

// AuthMiddleware is the authorization gate in front of every protected route.
type AuthMiddleware struct {
	sessions usecase.SessionUsecase
	metrics  *metrics.Metrics
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Sessions usecase.SessionUsecase
	Metrics  *metrics.Metrics `optional:"true"`
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{sessions: params.Sessions, metrics: params.Metrics}
}

// Authenticate stops at the first failure: missing token, then token
// verification, then account resolution. Handlers read identity only from
// the echo context, never from the request body.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			m.metrics.AuthRejected(metrics.ReasonMissingToken)

			return domainerrors.ErrMissingToken
		}

		account, err := m.sessions.Authenticate(c.Request().Context(), token)
		if err != nil {
			return errors.Wrap(err, "authentication failed")
		}

		deliverycontext.SetAccount(c, account)

		return next(c)
	}
}

// bearerToken accepts "Bearer <token>" with a case-insensitive scheme.
func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(header[len(bearerPrefix):])
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}

	return token, true
}
