package kafka

import (
	"context"

	"channelboard/config"
	"channelboard/internal/domain"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

var Module = fx.Module(
	"kafka",
	fx.Provide(
		NewKafkaProducer,
		NewAdapter,
	),
)

func NewKafkaProducer(lc fx.Lifecycle, cfg *config.KafkaConfig, log zerolog.Logger) (*Producer, error) {
	producer, err := NewProducer(cfg.Brokers, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("closing kafka producer...")
			return producer.Close()
		},
	})

	return producer, nil
}

func NewAdapter(producer *Producer, cfg *config.KafkaConfig) domain.EventProducer {
	return NewProducerAdapter(producer, cfg)
}
