package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"twitchfarm/cmd/fx/account_fx"
	"twitchfarm/cmd/fx/activity_fx"
	"twitchfarm/cmd/fx/channel_fx"
	"twitchfarm/cmd/fx/controllers_fx"
	"twitchfarm/cmd/fx/dashboard_fx"
	"twitchfarm/cmd/fx/db_fx"
	"twitchfarm/cmd/fx/memcache_fx"
	"twitchfarm/cmd/fx/prediction_fx"
	"twitchfarm/cmd/fx/settings_fx"
	"twitchfarm/cmd/fx/twitch_fx"
	"twitchfarm/cmd/fx/webhook_fx"
	"twitchfarm/internal/api/controllers"
	"twitchfarm/internal/config"
	mem "twitchfarm/pkg/memcache"
	"twitchfarm/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		memcache_fx.Module,
		webhook_fx.Module,
		account_fx.Module,
		channel_fx.Module,
		prediction_fx.Module,
		activity_fx.Module,
		settings_fx.Module,
		dashboard_fx.Module,
		twitch_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	sessions mem.SessionStore,
	authController *controllers.AuthController,
	channelController *controllers.ChannelController,
	predictionController *controllers.PredictionController,
	activityController *controllers.ActivityController,
	settingsController *controllers.SettingsController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))

	RegisterRoutes(r, cfg, sessions,
		authController, channelController, predictionController,
		activityController, settingsController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg *config.Config,
	sessions mem.SessionStore,
	authController *controllers.AuthController,
	channelController *controllers.ChannelController,
	predictionController *controllers.PredictionController,
	activityController *controllers.ActivityController,
	settingsController *controllers.SettingsController,
	dashboardController *controllers.DashboardController) {

	secret := []byte(cfg.SessionSecret)
	authRequired := middleware.SessionAuthMiddleware(sessions, secret)
	authOptional := middleware.OptionalSessionMiddleware(sessions, secret)

	auth := r.Group("/api/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)
	// Optional so a second logout stays a no-op instead of a 401.
	auth.POST("/logout", authOptional, authController.Logout)
	auth.GET("/status", authOptional, authController.Status)
	auth.GET("/twitch", authRequired, authController.TwitchAuthURL)
	auth.GET("/twitch/callback", authRequired, authController.TwitchCallback)

	api := r.Group("/api", authRequired)

	api.GET("/channels", channelController.List)
	api.POST("/channels", channelController.Create)
	api.GET("/channels/:id", channelController.Get)
	api.PUT("/channels/:id", channelController.Update)
	api.DELETE("/channels/:id", channelController.Delete)
	api.GET("/channels/stats/:channelId", channelController.Stats)
	api.POST("/channels/toggle-setting", channelController.ToggleSetting)

	api.GET("/predictions", predictionController.List)
	api.GET("/predictions/channel/:channelId", predictionController.ListByChannel)
	api.POST("/predictions", predictionController.Create)
	api.PUT("/predictions/:id", predictionController.Resolve)

	api.GET("/activities", activityController.List)

	api.GET("/settings", settingsController.Get)
	api.PUT("/settings", settingsController.Update)

	api.GET("/dashboard/summary", dashboardController.Summary)
}
