package middleware

import (
	"log/slog"
	"net/http"

	"dashkeep/config"
	"dashkeep/internal/delivery/api/response"
	"dashkeep/internal/delivery/api/validator"
	deliverycontext "dashkeep/internal/delivery/context"
	domainerrors "dashkeep/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware turns every error returned by a handler into the JSON envelope.
type ErrorMiddleware struct {
	logger     *slog.Logger
	production bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger:     logger,
		production: cfg.IsProduction(),
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		e := domainerrors.ErrValidationFailed
		_ = response.Error(c, e.HTTPCode(), e.ErrorCode(), e.Message(), validationErr.Fields)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.writeInternal(c, err, appErr.ErrorCode(), appErr.Message())

			return
		}

		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		m.writeHTTPError(c, err, httpErr)

		return
	}

	m.writeInternal(c, err, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) writeHTTPError(c echo.Context, err error, httpErr *echo.HTTPError) {
	switch httpErr.Code {
	case http.StatusNotFound:
		e := domainerrors.ErrNotFound
		_ = response.Error(c, e.HTTPCode(), e.ErrorCode(), e.Message(), nil)
	case http.StatusRequestEntityTooLarge:
		_ = response.Error(c, httpErr.Code, "PAYLOAD_TOO_LARGE", "Corpo da requisição muito grande", nil)
	default:
		if httpErr.Code >= http.StatusInternalServerError {
			m.writeInternal(c, err, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())

			return
		}
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)
	}
}

// writeInternal logs the full error; the client sees it only outside production.
func (m *ErrorMiddleware) writeInternal(c echo.Context, err error, code, message string) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	var details any
	if !m.production {
		details = err.Error()
	}

	_ = response.Error(c, http.StatusInternalServerError, code, message, details)
}
