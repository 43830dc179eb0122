package activity_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"twitchfarm/internal/repositories"
	"twitchfarm/internal/services"
)

var Module = fx.Provide(
	provideActivityService, provideActivityRepo)

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideActivityService(activityRepo repositories.ActivityRepository) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo)
}
