package middleware

import (
	"log/slog"
	"net/http"

	"foodbank/internal/delivery/api/response"
	domainerrors "foodbank/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware handles errors that escape a route handler
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Transport
// errors such as unknown routes or oversized bodies keep their status code.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.FailureWithStatus(c, appErr.HTTPCode(), err)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		kind := domainerrors.KindValidation
		if httpErr.Code >= http.StatusInternalServerError {
			kind = domainerrors.KindInternal
		}

		_ = response.FailureWithStatus(c, httpErr.Code,
			domainerrors.NewBaseError(kind, httpErr.Code, "HTTP_ERROR", message, ""))

		return
	}

	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.FailureWithStatus(c, http.StatusInternalServerError, err)
}
