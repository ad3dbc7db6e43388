package http

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const loggerContextKey = "request_logger"

// RequestID assigns each request a correlation id, echoes it back in the
// X-Request-Id header and scopes a logger to it for downstream handlers.
func RequestID(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			requestID := ctx.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			ctx.Response().Header().Set(echo.HeaderXRequestID, requestID)
			ctx.Set(loggerContextKey, base.With("request_id", requestID))
			return next(ctx)
		}
	}
}

// requestLogger returns the request-scoped logger installed by RequestID,
// falling back to the given logger when the middleware is not mounted.
func requestLogger(ctx echo.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Get(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return fallback
}
