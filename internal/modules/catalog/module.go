package catalog

import (
	"dam-workspace-server/internal/modules/catalog/handler"
	"dam-workspace-server/internal/modules/catalog/repo"
	"dam-workspace-server/internal/modules/catalog/service"
	"dam-workspace-server/internal/platform/cache"
	platformservice "dam-workspace-server/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	projectStore repo.ProjectStore,
	folderStore repo.FolderStore,
	imageStore repo.ImageStore,
	listingCache *cache.ListingCache,
) *Module {
	moduleService := service.New(appService, projectStore, folderStore, imageStore, listingCache)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
