package postgres

import (
	"go.uber.org/fx"
)

var Module = fx.Module(
	"repository",
	fx.Provide(
		NewUserRepository,
		NewChannelRepository,
		NewSubscriptionRepository,
		NewMessageRepository,
		NewPermissionRepository,
	),
)
