package handler

import (
	"net/http"

	"centinela/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Root answers the base path with a short service banner.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "Microservicio de Autenticación funcionando")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
