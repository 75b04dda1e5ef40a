package bootstrap

import (
	"context"

	"tablebook/internal/infra/notification"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher wires Kafka when brokers are configured and falls
// back to a no-op publisher otherwise.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) usecase.EventPublisher {
	publisher := BuildEventPublisher(cfg)
	if kp, ok := publisher.(*notification.KafkaPublisher); ok {
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return kp.Close()
			},
		})
	}
	return publisher
}

func BuildEventPublisher(cfg config.Config) usecase.EventPublisher {
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Brokers[0] == "" {
		return notification.NewNoopPublisher()
	}
	return notification.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
}
