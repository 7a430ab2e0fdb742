package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ogarmar/Compa/config"
	"github.com/ogarmar/Compa/internal/delivery"
	"github.com/ogarmar/Compa/internal/delivery/bot"
	"github.com/ogarmar/Compa/internal/delivery/http"
	"github.com/ogarmar/Compa/internal/delivery/http/middleware"
	"github.com/ogarmar/Compa/internal/delivery/http/router/handler"
	"github.com/ogarmar/Compa/internal/delivery/ws"
	"github.com/ogarmar/Compa/internal/domain/service"
	"github.com/ogarmar/Compa/internal/infra/devicecode"
	"github.com/ogarmar/Compa/internal/infra/live"
	logs "github.com/ogarmar/Compa/internal/infra/log"
	"github.com/ogarmar/Compa/internal/infra/notification"
	"github.com/ogarmar/Compa/internal/infra/pending"
	"github.com/ogarmar/Compa/internal/infra/persistence/postgres"
	"github.com/ogarmar/Compa/internal/infra/pubsub"
	"github.com/ogarmar/Compa/internal/infra/qrcode"
	"github.com/ogarmar/Compa/internal/usecase/impl"

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
			postgres.NewDeviceRepository,
			postgres.NewConnectionRepository,
			postgres.NewMessageRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newCodeService,
			newQRCodeService,
			newFirebaseService,
			newConnectionRegistry,
			newPendingRequestStore,
			pubsub.NewEventPublisher,
			bot.NewBotAPI,
			bot.NewNotifier,
		),
	)
}

// newCodeService creates a device code generator from pairing configuration
func newCodeService(cfg *config.Config) service.CodeService {
	return devicecode.NewGenerator(cfg.Pairing.CodeLength, cfg.Pairing.MaxAttempts)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(cfg.Pairing.BotDisplayName, 256, "M")
	}

	return qrcode.NewQRCodeService(cfg.Pairing.BotDisplayName, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.PushService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
}

func newConnectionRegistry() service.ConnectionRegistry {
	return live.NewRegistry()
}

func newPendingRequestStore(cfg *config.Config) service.PendingRequestStore {
	return pending.NewTable(cfg.Pairing.RequestTTL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPairingService,
			impl.NewRelayService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewMessageHandler,
			ws.NewHandler,
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
			fx.Annotate(
				bot.NewDelivery,
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
