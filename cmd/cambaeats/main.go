package main

import (
	"context"
	"log/slog"
	"os"

	"cambaeats/config"
	"cambaeats/internal/delivery"
	"cambaeats/internal/delivery/api"
	"cambaeats/internal/delivery/api/router/handler"
	"cambaeats/internal/delivery/middleware"
	"cambaeats/internal/infra/backend"
	"cambaeats/internal/infra/clientlog"
	logs "cambaeats/internal/infra/log"
	"cambaeats/internal/infra/persistence"
	"cambaeats/internal/infra/qrcode"
	"cambaeats/internal/usecase/impl"

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		backend.Module,
		persistence.Module,
		clientlog.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			qrcode.NewPaymentQRService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartSessions,
			impl.NewCheckoutService,
			impl.NewOrderService,
			impl.NewMenuService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMenuHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
