// Package http assembles the Echo server that fronts the authentication API.
package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"centinela/config"
	"centinela/internal/delivery"
	"centinela/internal/delivery/http/middleware"
	"centinela/internal/delivery/http/router"
	"centinela/internal/delivery/http/validator"
	"centinela/internal/domain/lifecycle"
	"centinela/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

const defaultMaxRequestBodySize = "1M"

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the Echo instance with its middleware chain and routes.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = params.Cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = params.Cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = params.Cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = params.Cfg.HTTP.Timeouts.IdleTimeout

	// Recover first so panics anywhere below are caught.
	echoServer.Use(echomiddleware.Recover())

	// Request ID before the logger so every line carries it.
	requestIDMiddleware := middleware.NewRequestIDMiddleware()
	echoServer.Use(requestIDMiddleware.Process)

	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	echoServer.Use(loggerMiddleware.Handle)

	echoServer.Use(corsMiddleware(params.Cfg))

	bodyLimit := params.Cfg.HTTP.MaxRequestBodySize
	if bodyLimit == "" {
		bodyLimit = defaultMaxRequestBodySize
	}
	echoServer.Use(echomiddleware.BodyLimit(bodyLimit))

	errorMiddleware := middleware.NewErrorMiddleware(params.Logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &httpServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// corsMiddleware applies the configured origin allow-list. Without one, any
// origin is accepted, mirroring a permissive development setup.
func corsMiddleware(cfg *config.Config) echo.MiddlewareFunc {
	if cfg.CORS == nil || len(cfg.CORS.AllowedOrigins) == 0 {
		return echomiddleware.CORS()
	}

	return echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	})
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))

	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
