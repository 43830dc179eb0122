package twitch_fx

import (
	"go.uber.org/fx"
	"twitchfarm/internal/config"
	"twitchfarm/internal/repositories"
	"twitchfarm/internal/services"
	mem "twitchfarm/pkg/memcache"
)

var Module = fx.Provide(
	provideTwitchService)

func provideTwitchService(
	cfg *config.Config,
	sessions mem.SessionStore,
	accountRepo repositories.AccountRepository,
) services.TwitchServiceInterface {
	return services.NewTwitchService(services.TwitchConfig{
		ClientID:     cfg.TwitchClientID,
		ClientSecret: cfg.TwitchClientSecret,
	}, sessions, accountRepo)
}
