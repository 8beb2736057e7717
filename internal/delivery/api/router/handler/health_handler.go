package handler

import (
	"net/http"
	"time"

	"dashkeep/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck handles GET /api/health.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
