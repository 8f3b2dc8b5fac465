package middleware

import (
	deliverycontext "centinela/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware generates or extracts a unique request ID for each
// request so every log line of one call can be correlated.
type RequestIDMiddleware struct{}

// NewRequestIDMiddleware creates a new request ID middleware.
func NewRequestIDMiddleware() *RequestIDMiddleware {
	return &RequestIDMiddleware{}
}

// Process extracts the request ID from the header or mints one, stores it in
// both the echo context and the request context, and echoes it back in the
// response header.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
