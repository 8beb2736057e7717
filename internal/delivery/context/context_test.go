package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"dashkeep/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
}

func TestAccountHelpers(t *testing.T) {
	c := newEchoContext()

	_, ok := GetAccountID(c)
	assert.False(t, ok)

	account := &entity.Account{ID: uuid.New(), Email: "ana@example.com"}
	SetAccount(c, account)

	id, ok := GetAccountID(c)
	assert.True(t, ok)
	assert.Equal(t, account.ID, id)

	email, ok := GetAccountEmail(c)
	assert.True(t, ok)
	assert.Equal(t, "ana@example.com", email)
}

func TestLoggerHelpers(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := slog.New(slog.DiscardHandler)

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
}

func TestRequestIDHelpers(t *testing.T) {
	c := newEchoContext()
	assert.NotEmpty(t, GetRequestID(c))

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(context.Background(), "req-1")))
}
