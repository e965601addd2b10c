package app

import (
	"channelboard/config"
	"channelboard/internal/infrastructure/database"
	"channelboard/internal/infrastructure/httpserver"
	"channelboard/internal/infrastructure/kafka"
	"channelboard/internal/infrastructure/logger"
	"channelboard/internal/repository/postgres"
	"channelboard/internal/usecase"

	"go.uber.org/fx"
)

func CreateApp() fx.Option {
	return fx.Options(
		fx.Provide(config.Out),

		logger.Module,
		database.Module,
		kafka.Module,

		postgres.Module,
		usecase.Module,

		httpserver.Module,
	)
}
