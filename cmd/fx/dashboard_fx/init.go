package dashboard_fx

import (
	"go.uber.org/fx"
	"twitchfarm/internal/repositories"
	"twitchfarm/internal/services"
)

var Module = fx.Provide(
	provideDashboardService)

func provideDashboardService(
	channelRepo repositories.ChannelRepository,
	predictionRepo repositories.PredictionRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(channelRepo, predictionRepo)
}
