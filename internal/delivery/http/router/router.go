// Package router wires the HTTP routes to their handlers.
package router

import (
	"centinela/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler *handler.AuthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler *handler.AuthHandler
}

// NewRouter is the constructor for the router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler: params.AuthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh-token", r.authHandler.RefreshToken)
		authGroup.GET("/recovery-questions", r.authHandler.GetCommonRecoveryQuestions)
		authGroup.GET("/recovery-question/:username", r.authHandler.GetRecoveryQuestionByUsername)
		authGroup.POST("/verify-recovery", r.authHandler.VerifyRecoveryAnswer)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}
}
