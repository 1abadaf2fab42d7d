package settings

import (
	"dam-workspace-server/internal/modules/settings/handler"
	"dam-workspace-server/internal/modules/settings/repo"
	"dam-workspace-server/internal/modules/settings/service"
	platformservice "dam-workspace-server/internal/platform/service"
)

var _ handler.AdminService = (*service.Service)(nil)

// Module 后台配置管理；配置的读取与缓存由共享的 AppService 负责
type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, settingStore repo.SettingStore) *Module {
	svc := service.New(appService, settingStore)
	return &Module{Service: svc, Handler: handler.New(svc)}
}
