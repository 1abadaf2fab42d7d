package modules

import (
	"time"

	"dam-workspace-server/internal/modules/catalog"
	catalogrepo "dam-workspace-server/internal/modules/catalog/repo"
	"dam-workspace-server/internal/modules/settings"
	settingsrepo "dam-workspace-server/internal/modules/settings/repo"
	"dam-workspace-server/internal/modules/system"
	systemrepo "dam-workspace-server/internal/modules/system/repo"
	"dam-workspace-server/internal/modules/workspace"
	"dam-workspace-server/internal/platform/cache"
	platformservice "dam-workspace-server/internal/platform/service"
)

type AppModules struct {
	Catalog   *catalog.Module
	Workspace *workspace.Module
	Settings  *settings.Module
	System    *system.Module
}

// HeartbeatFunc 返回 SSE 心跳间隔
type HeartbeatFunc func() time.Duration

func New(
	appService *platformservice.AppService,
	projectStore catalogrepo.ProjectStore,
	folderStore catalogrepo.FolderStore,
	imageStore catalogrepo.ImageStore,
	settingStore settingsrepo.SettingStore,
	systemStore systemrepo.SystemStore,
	listingCache *cache.ListingCache,
	heartbeat HeartbeatFunc,
) *AppModules {
	catalogModule := catalog.New(appService, projectStore, folderStore, imageStore, listingCache)
	workspaceModule := workspace.New(appService, catalogModule.Service, heartbeat)

	return &AppModules{
		Catalog:   catalogModule,
		Workspace: workspaceModule,
		Settings:  settings.New(appService, settingStore),
		System:    system.New(appService, systemStore, workspaceModule.Sessions),
	}
}
