package channel_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"twitchfarm/internal/repositories"
	"twitchfarm/internal/services"
)

var Module = fx.Provide(
	provideChannelService, provideChannelRepo)

func provideChannelRepo(db *gorm.DB) repositories.ChannelRepository {
	return repositories.NewChannelRepository(db)
}

func provideChannelService(
	channelRepo repositories.ChannelRepository,
	predictionRepo repositories.PredictionRepository,
	webhook services.WebhookNotifier,
) services.ChannelServiceInterface {
	return services.NewChannelService(channelRepo, predictionRepo, webhook)
}
