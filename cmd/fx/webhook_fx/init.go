package webhook_fx

import (
	"go.uber.org/fx"
	"twitchfarm/internal/repositories"
	"twitchfarm/internal/services"
)

var Module = fx.Provide(
	provideWebhookNotifier)

func provideWebhookNotifier(settingsRepo repositories.SettingsRepository) services.WebhookNotifier {
	return services.NewWebhookNotifier(settingsRepo)
}
