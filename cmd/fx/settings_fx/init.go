package settings_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"twitchfarm/internal/repositories"
	"twitchfarm/internal/services"
)

var Module = fx.Provide(
	provideSettingsService, provideSettingsRepo)

func provideSettingsRepo(db *gorm.DB) repositories.SettingsRepository {
	return repositories.NewSettingsRepository(db)
}

func provideSettingsService(settingsRepo repositories.SettingsRepository) services.SettingsServiceInterface {
	return services.NewSettingsService(settingsRepo)
}
