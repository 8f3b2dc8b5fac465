// Package middleware contains the HTTP middleware chain of the API server.
package middleware

import (
	"fmt"
	"log/slog"

	deliverycontext "centinela/internal/delivery/context"
	"centinela/internal/delivery/http/response"
	domainerrors "centinela/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the centralized error handler. Every error returned by a
// handler funnels through here and is rendered as the unified JSON envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Business errors carry their own status, code and message.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= 500 {
			m.logError(err, c)
		}
		response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Echo's own errors (404 route not found, 405, oversized body).
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		response.Error(c, httpErr.Code, "HTTP_ERROR", fmt.Sprintf("%v", httpErr.Message), "")

		return
	}

	// Anything else is an unexpected failure; log it and answer with the
	// generic server error so internals never leak to clients.
	m.logError(err, c)

	response.Error(c,
		domainerrors.ErrInternal.HTTPCode(),
		domainerrors.ErrInternal.ErrorCode(),
		domainerrors.ErrInternal.Message(),
		"",
	)
}

func (m *ErrorMiddleware) logError(err error, c echo.Context) {
	m.logger.Error("Unhandled error",
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	)
}
