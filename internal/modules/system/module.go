package system

import (
	"dam-workspace-server/internal/modules/system/handler"
	"dam-workspace-server/internal/modules/system/repo"
	"dam-workspace-server/internal/modules/system/service"
	platformservice "dam-workspace-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	systemStore repo.SystemStore,
	sessions service.SessionCounter,
) *Module {
	moduleService := service.New(appService, systemStore, sessions)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
