//go:build wireinject
// +build wireinject

package di

import (
	"dam-workspace-server/internal/config"
	"dam-workspace-server/internal/modules"
	catalogrepo "dam-workspace-server/internal/modules/catalog/repo"
	settingsrepo "dam-workspace-server/internal/modules/settings/repo"
	systemrepo "dam-workspace-server/internal/modules/system/repo"
	"dam-workspace-server/internal/platform/service"
	"dam-workspace-server/internal/router"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB, redisClient *redis.Client, redisCfg config.RedisConfig) (*Application, error) {
	wire.Build(
		settingsrepo.NewSettingRepository,
		catalogrepo.NewProjectRepository,
		catalogrepo.NewFolderRepository,
		catalogrepo.NewImageRepository,
		systemrepo.NewSystemRepository,
		service.NewAppService,
		provideListingCache,
		provideHeartbeat,
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
