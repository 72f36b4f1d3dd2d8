package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/DARSHAN2224/authentication/config"
	"github.com/DARSHAN2224/authentication/internal/delivery"
	"github.com/DARSHAN2224/authentication/internal/delivery/http"
	httpmiddleware "github.com/DARSHAN2224/authentication/internal/delivery/http/middleware"
	"github.com/DARSHAN2224/authentication/internal/delivery/http/router/handler"
	deliverymiddleware "github.com/DARSHAN2224/authentication/internal/delivery/middleware"
	"github.com/DARSHAN2224/authentication/internal/infra/auth"
	logs "github.com/DARSHAN2224/authentication/internal/infra/log"
	"github.com/DARSHAN2224/authentication/internal/infra/notification"
	"github.com/DARSHAN2224/authentication/internal/infra/persistence/postgres"
	"github.com/DARSHAN2224/authentication/internal/usecase/impl"
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
		injectMiddleware(),
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
			postgres.NewAccountRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewSecretGenerator,
			notification.NewSMTPSender,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			deliverymiddleware.NewRequestIDMiddleware,
			deliverymiddleware.NewLoggerMiddleware,
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
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
