package bootstrap

import (
	"context"
	"log/slog"

	"donbalon/internal/infra/broker"
	"donbalon/internal/pkg/config"
	"donbalon/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to a no-op publisher when AMQP_URL is empty.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) shared.EventPublisher {
	if cfg.Broker.URL == "" {
		logger.Info("AMQP_URL が未設定のため、イベントは送信されません")
		return broker.NopPublisher{}
	}

	publisher := broker.NewAMQPPublisher(cfg.Broker.URL, cfg.Broker.Exchange)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	logger.Info("イベント送信先を設定しました", "exchange", cfg.Broker.Exchange)
	return publisher
}
