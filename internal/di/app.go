package di

import (
	"time"

	"dam-workspace-server/internal/config"
	"dam-workspace-server/internal/modules"
	"dam-workspace-server/internal/platform/cache"
	"dam-workspace-server/internal/platform/service"
	"dam-workspace-server/internal/router"

	"github.com/redis/go-redis/v9"
)

type Application struct {
	Router  *router.Router
	Service *service.AppService
	Modules *modules.AppModules
}

func NewApplication(r *router.Router, s *service.AppService, m *modules.AppModules) *Application {
	return &Application{
		Router:  r,
		Service: s,
		Modules: m,
	}
}

func provideListingCache(client *redis.Client, cfg config.RedisConfig) *cache.ListingCache {
	return cache.NewListingCache(client, cfg.Prefix)
}

// provideHeartbeat 每次调用读取最新配置，配置热更新后新连接即生效
func provideHeartbeat() modules.HeartbeatFunc {
	return func() time.Duration {
		seconds := config.Get().Workspace.HeartbeatSeconds
		if seconds <= 0 {
			seconds = 15
		}
		return time.Duration(seconds) * time.Second
	}
}
