package main

import (
	"context"
	"log/slog"
	"os"

	"foodbank/config"
	"foodbank/internal/delivery"
	"foodbank/internal/delivery/api"
	"foodbank/internal/delivery/api/action"
	"foodbank/internal/delivery/api/router/handler"
	"foodbank/internal/domain/service"
	"foodbank/internal/infra/auth"
	"foodbank/internal/infra/lock"
	logs "foodbank/internal/infra/log"
	"foodbank/internal/infra/metrics"
	"foodbank/internal/infra/persistence/postgres"
	"foodbank/internal/infra/pubsub"
	"foodbank/internal/infra/qrcode"
	"foodbank/internal/infra/storage"
	"foodbank/internal/normalize"
	"foodbank/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		postgres.Module,
		pubsub.Module,
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
		normalize.NewFromConfig,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			lock.New,
			metrics.New,
			storage.New,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewLogService,
			impl.NewPantryService,
			impl.NewReservationService,
			impl.NewDonationService,
			impl.NewRequestService,
			impl.NewAdminService,
			impl.NewViewService,
			impl.NewStatsService,
			impl.NewImportService,
		),
	)
}

// asAction registers a handler constructor as an action provider.
func asAction(constructor any) any {
	return fx.Annotate(
		constructor,
		fx.As(new(action.Provider)),
		fx.ResultTags(`group:"actions"`),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			asAction(handler.NewPantryHandler),
			asAction(handler.NewReservationHandler),
			asAction(handler.NewDonationHandler),
			asAction(handler.NewRequestHandler),
			asAction(handler.NewReportHandler),
			asAction(handler.NewAdminHandler),
			asAction(handler.NewSystemHandler),
			handler.NewExecHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
