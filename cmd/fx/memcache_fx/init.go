package memcache_fx

import (
	"go.uber.org/fx"
	mem "twitchfarm/pkg/memcache"
)

var Module = fx.Provide(
	provideSessions)

func provideSessions() mem.SessionStore {
	return mem.NewSessions()
}
