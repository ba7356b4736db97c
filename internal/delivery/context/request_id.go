// Package context carries the request id and the request-scoped logger
// between echo handlers and the usecases they call.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed back on every response and copied into the
// envelope meta.
const HeaderXRequestID = "X-Request-Id"

// echoKeyRequestID is the echo.Context store key.
const echoKeyRequestID = "request_id"

type (
	requestIDKey struct{}
	loggerKey    struct{}
)

// GetRequestID returns the id assigned by the request id middleware, or a
// fresh one for contexts that never passed through it.
func GetRequestID(c echo.Context) string {
	if id, _ := c.Get(echoKeyRequestID).(string); id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores requestID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoKeyRequestID, requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request id.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetLogger returns nil when ctx carries no logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey{}).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}
