// Command centinela runs the authentication and token-issuance service.
//
//	@title			API de Autenticación
//	@version		1.0
//	@description	Microservicio de autenticación: registro, login, renovación de tokens y recuperación de contraseña mediante pregunta de seguridad.
//	@BasePath		/
package main

import (
	"context"
	"log/slog"
	"os"

	"centinela/config"
	"centinela/internal/delivery"
	"centinela/internal/delivery/http"
	"centinela/internal/delivery/http/router/handler"
	"centinela/internal/infra/auth"
	logs "centinela/internal/infra/log"
	"centinela/internal/infra/persistence/postgres"
	"centinela/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
