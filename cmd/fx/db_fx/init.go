package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"twitchfarm/internal/config"
	"twitchfarm/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg.PostgresURL)
}
