package controllers_fx

import (
	"go.uber.org/fx"
	"twitchfarm/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewChannelController),
	fx.Provide(controllers.NewPredictionController),
	fx.Provide(controllers.NewActivityController),
	fx.Provide(controllers.NewSettingsController),
	fx.Provide(controllers.NewDashboardController))
