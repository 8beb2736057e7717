package handler

import (
	"net/http"

	"dashkeep/internal/delivery/api/response"
	deliverycontext "dashkeep/internal/delivery/context"
	domainerrors "dashkeep/internal/domain/errors"
	"dashkeep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler serves the caller's own dashboard. The owner is always the
// authenticated account.
type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func owner(c echo.Context) (uuid.UUID, error) {
	ownerID, ok := deliverycontext.GetAccountID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrMissingToken
	}

	return ownerID, nil
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(c echo.Context) error {
	ownerID, err := owner(c)
	if err != nil {
		return err
	}

	dashboard, err := h.uc.Get(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDashboardView(dashboard))
}

// Save handles POST and PUT /api/dashboard.
func (h *DashboardHandler) Save(c echo.Context) error {
	ownerID, err := owner(c)
	if err != nil {
		return err
	}

	var req dashboardRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidDashboard.WithDetails("corpo JSON inválido")
	}

	dashboard, err := h.uc.Upsert(c.Request().Context(), ownerID, req.Data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newDashboardView(dashboard))
}

// Delete handles DELETE /api/dashboard.
func (h *DashboardHandler) Delete(c echo.Context) error {
	ownerID, err := owner(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), ownerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Dashboard deletado com sucesso",
	})
}
