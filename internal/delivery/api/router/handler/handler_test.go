package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dashkeep/internal/delivery/api/validator"
	deliverycontext "dashkeep/internal/delivery/context"
	"dashkeep/internal/domain/entity"
	domainerrors "dashkeep/internal/domain/errors"
	mockUsecase "dashkeep/internal/mocks/usecase"
	"dashkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func sessionOutput() *usecase.SessionOutput {
	account := entity.NewAccount("ana@x.com", "$2a$10$hash")
	profile := entity.NewProfile(account.ID, "Ana Souza", "(11) 98765-4321", "11111111111")

	return &usecase.SessionOutput{
		Token:     "signed.token.value",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		Account:   account,
		Profile:   profile,
	}
}

func TestAccountHandler_Register(t *testing.T) {
	t.Run("creates the account and returns the session", func(t *testing.T) {
		uc := mockUsecase.NewMockAccountUsecase(t)
		h := NewAccountHandler(uc, slog.New(slog.DiscardHandler))
		out := sessionOutput()

		uc.EXPECT().Register(mock.Anything, usecase.RegisterInput{
			FullName:   "Ana Souza",
			Email:      "ana@x.com",
			Password:   "secret123",
			Phone:      "(11) 98765-4321",
			NationalID: "111.111.111-11",
		}).Return(out, nil).Once()

		c, rec := newContext(http.MethodPost, `{"nome_completo":"  Ana Souza ","email":"ana@x.com","telefone":"(11) 98765-4321","cpf":"111.111.111-11","senha":"secret123"}`)
		require.NoError(t, h.Register(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var body struct {
			Data sessionView `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "signed.token.value", body.Data.Token)
		assert.Equal(t, out.Account.ID, body.Data.User.ID)
		require.NotNil(t, body.Data.User.Profile)
		assert.Equal(t, "11111111111", body.Data.User.Profile.NationalID)
		assert.NotContains(t, rec.Body.String(), "$2a$10$hash")
	})

	t.Run("rejects invalid fields before the use case runs", func(t *testing.T) {
		uc := mockUsecase.NewMockAccountUsecase(t)
		h := NewAccountHandler(uc, slog.New(slog.DiscardHandler))

		c, _ := newContext(http.MethodPost, `{"nome_completo":"Ana","email":"ana@x.com","telefone":"123","cpf":"11111111111","senha":"secret123"}`)
		err := h.Register(c)

		var validationErr *validator.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Len(t, validationErr.Fields, 1)
		assert.Equal(t, "telefone", validationErr.Fields[0].Field)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		uc := mockUsecase.NewMockAccountUsecase(t)
		h := NewAccountHandler(uc, slog.New(slog.DiscardHandler))

		c, _ := newContext(http.MethodPost, `{"email":`)
		err := h.Register(c)

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("propagates duplicate email", func(t *testing.T) {
		uc := mockUsecase.NewMockAccountUsecase(t)
		h := NewAccountHandler(uc, slog.New(slog.DiscardHandler))

		uc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrDuplicateEmail).Once()

		c, _ := newContext(http.MethodPost, `{"nome_completo":"Ana","email":"ana@x.com","telefone":"11987654321","cpf":"11111111111","senha":"secret123"}`)
		err := h.Register(c)

		assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
	})
}

func TestAccountHandler_Login(t *testing.T) {
	t.Run("returns the session", func(t *testing.T) {
		uc := mockUsecase.NewMockAccountUsecase(t)
		h := NewAccountHandler(uc, slog.New(slog.DiscardHandler))

		uc.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "ana@x.com", Password: "secret123"}).
			Return(sessionOutput(), nil).Once()

		c, rec := newContext(http.MethodPost, `{"email":" ana@x.com ","senha":"secret123"}`)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"token":"signed.token.value"`)
	})

	t.Run("requires the password", func(t *testing.T) {
		uc := mockUsecase.NewMockAccountUsecase(t)
		h := NewAccountHandler(uc, slog.New(slog.DiscardHandler))

		c, _ := newContext(http.MethodPost, `{"email":"ana@x.com"}`)
		err := h.Login(c)

		var validationErr *validator.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "senha", validationErr.Fields[0].Field)
	})

	t.Run("propagates invalid credentials", func(t *testing.T) {
		uc := mockUsecase.NewMockAccountUsecase(t)
		h := NewAccountHandler(uc, slog.New(slog.DiscardHandler))

		uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()

		c, _ := newContext(http.MethodPost, `{"email":"ana@x.com","senha":"wrong"}`)
		assert.ErrorIs(t, h.Login(c), domainerrors.ErrInvalidCredentials)
	})
}

func TestAccountHandler_GetProfile(t *testing.T) {
	uc := mockUsecase.NewMockAccountUsecase(t)
	h := NewAccountHandler(uc, slog.New(slog.DiscardHandler))
	out := sessionOutput()

	t.Run("requires an authenticated account", func(t *testing.T) {
		c, _ := newContext(http.MethodGet, "")
		assert.ErrorIs(t, h.GetProfile(c), domainerrors.ErrMissingToken)
	})

	t.Run("returns the caller's profile", func(t *testing.T) {
		uc.EXPECT().GetProfile(mock.Anything, out.Account.ID).
			Return(&usecase.ProfileOutput{Account: out.Account, Profile: out.Profile}, nil).Once()

		c, rec := newContext(http.MethodGet, "")
		deliverycontext.SetAccount(c, out.Account)

		require.NoError(t, h.GetProfile(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"nome_completo":"Ana Souza"`)
	})
}

func TestDashboardHandler(t *testing.T) {
	account := entity.NewAccount("ana@x.com", "hash")
	dashboard := entity.NewDashboard(account.ID, entity.DefaultDashboardData())

	t.Run("get uses the authenticated owner", func(t *testing.T) {
		uc := mockUsecase.NewMockDashboardUsecase(t)
		h := NewDashboardHandler(uc)
		uc.EXPECT().Get(mock.Anything, account.ID).Return(dashboard, nil).Once()

		c, rec := newContext(http.MethodGet, "")
		deliverycontext.SetAccount(c, account)

		require.NoError(t, h.Get(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"owner":"`+account.ID.String()+`"`)
		assert.Contains(t, rec.Body.String(), `"lastUpdated"`)
	})

	t.Run("save ignores an owner in the body", func(t *testing.T) {
		uc := mockUsecase.NewMockDashboardUsecase(t)
		h := NewDashboardHandler(uc)
		other := uuid.New()
		uc.EXPECT().Upsert(mock.Anything, account.ID, mock.MatchedBy(func(data json.RawMessage) bool {
			return string(data) == `{"metas":[1]}`
		})).Return(dashboard, nil).Once()

		c, rec := newContext(http.MethodPut, `{"owner":"`+other.String()+`","data":{"metas":[1]}}`)
		deliverycontext.SetAccount(c, account)

		require.NoError(t, h.Save(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("save rejects a body that is not an object", func(t *testing.T) {
		uc := mockUsecase.NewMockDashboardUsecase(t)
		h := NewDashboardHandler(uc)

		c, _ := newContext(http.MethodPost, `[1,2]`)
		deliverycontext.SetAccount(c, account)

		assert.ErrorIs(t, h.Save(c), domainerrors.ErrInvalidDashboard)
	})

	t.Run("delete reports a missing dashboard", func(t *testing.T) {
		uc := mockUsecase.NewMockDashboardUsecase(t)
		h := NewDashboardHandler(uc)
		uc.EXPECT().Delete(mock.Anything, account.ID).Return(domainerrors.ErrDashboardNotFound).Once()

		c, _ := newContext(http.MethodDelete, "")
		deliverycontext.SetAccount(c, account)

		assert.ErrorIs(t, h.Delete(c), domainerrors.ErrDashboardNotFound)
	})

	t.Run("delete confirms removal", func(t *testing.T) {
		uc := mockUsecase.NewMockDashboardUsecase(t)
		h := NewDashboardHandler(uc)
		uc.EXPECT().Delete(mock.Anything, account.ID).Return(nil).Once()

		c, rec := newContext(http.MethodDelete, "")
		deliverycontext.SetAccount(c, account)

		require.NoError(t, h.Delete(c))
		assert.Contains(t, rec.Body.String(), "Dashboard deletado com sucesso")
	})

	t.Run("rejects unauthenticated calls", func(t *testing.T) {
		h := NewDashboardHandler(mockUsecase.NewMockDashboardUsecase(t))

		c, _ := newContext(http.MethodGet, "")
		assert.ErrorIs(t, h.Get(c), domainerrors.ErrMissingToken)
	})
}
