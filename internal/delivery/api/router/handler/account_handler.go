// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"dashkeep/internal/delivery/api/response"
	deliverycontext "dashkeep/internal/delivery/context"
	domainerrors "dashkeep/internal/domain/errors"
	"dashkeep/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler serves registration, login and the caller's profile.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, logger: logger}
}

// Register handles POST /api/auth/register.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterInput{
		FullName:   req.FullName,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		NationalID: req.NationalID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sessionView{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		User:      newUserView(output.Account, output.Profile),
	})
}

// Login handles POST /api/auth/login.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sessionView{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		User:      newUserView(output.Account, output.Profile),
	})
}

// GetProfile handles GET /api/auth/profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	accountID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return domainerrors.ErrMissingToken
	}

	output, err := h.uc.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user": newUserView(output.Account, output.Profile),
	})
}

type trimmable interface {
	trim()
}

func (r *registerRequest) trim() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *loginRequest) trim() {
	r.Email = strings.TrimSpace(r.Email)
}

// bindAndValidate rejects malformed JSON and rule violations before any use case runs.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("corpo JSON inválido")
	}
	if t, ok := req.(trimmable); ok {
		t.trim()
	}

	return c.Validate(req)
}
