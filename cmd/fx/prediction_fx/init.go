package prediction_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"twitchfarm/internal/repositories"
	"twitchfarm/internal/services"
)

var Module = fx.Provide(
	providePredictionService, providePredictionRepo)

func providePredictionRepo(db *gorm.DB) repositories.PredictionRepository {
	return repositories.NewPredictionRepository(db)
}

func providePredictionService(
	predictionRepo repositories.PredictionRepository,
	webhook services.WebhookNotifier,
) services.PredictionServiceInterface {
	return services.NewPredictionService(predictionRepo, webhook)
}
