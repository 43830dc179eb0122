package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"twitchfarm/internal/config"
	"twitchfarm/internal/repositories"
	"twitchfarm/internal/services"
	mem "twitchfarm/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	sessions mem.SessionStore,
	cfg *config.Config,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, sessions, []byte(cfg.SessionSecret))
}
