package service

import (
	"dam-workspace-server/internal/modules/catalog/repo"
	"dam-workspace-server/internal/platform/cache"
	platformservice "dam-workspace-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	projectStore repo.ProjectStore
	folderStore  repo.FolderStore
	imageStore   repo.ImageStore
	listingCache *cache.ListingCache
}

func New(
	appService *platformservice.AppService,
	projectStore repo.ProjectStore,
	folderStore repo.FolderStore,
	imageStore repo.ImageStore,
	listingCache *cache.ListingCache,
) *Service {
	return &Service{
		AppService:   appService,
		projectStore: projectStore,
		folderStore:  folderStore,
		imageStore:   imageStore,
		listingCache: listingCache,
	}
}
