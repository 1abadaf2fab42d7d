package service

import (
	"context"
	"time"

	"dam-workspace-server/internal/consts"
	"dam-workspace-server/internal/logging"
	"dam-workspace-server/internal/metrics"
	"dam-workspace-server/internal/model"

	"go.uber.org/zap"
)

const (
	listingKindFolders = "folders"
	listingKindImages  = "images"
)

func (s *Service) listingTTL() time.Duration {
	return time.Duration(s.GetInt(consts.ConfigListingCacheTTLSeconds)) * time.Second
}

// ListFolders 列出项目内某一层的文件夹，parentID 为空表示项目根目录
func (s *Service) ListFolders(ctx context.Context, projectID uint, parentID *uint) ([]model.Folder, error) {
	start := time.Now()
	var folders []model.Folder
	key, hit := s.readListingCache(ctx, projectID, listingKindFolders, parentID, &folders)
	if hit {
		metrics.ObserveListingFetch(listingKindFolders, "cache", time.Since(start))
		return folders, nil
	}

	folders, err := s.folderStore.ListChildren(projectID, parentID)
	if err != nil {
		return nil, internalError(err, "获取文件夹列表失败")
	}
	metrics.ObserveListingFetch(listingKindFolders, "db", time.Since(start))
	s.writeListingCache(ctx, key, projectID, listingKindFolders, folders)
	return folders, nil
}

// ListImages 列出项目内某一层的图片，folderID 为空表示项目根目录
func (s *Service) ListImages(ctx context.Context, projectID uint, folderID *uint) ([]model.Image, error) {
	start := time.Now()
	var images []model.Image
	key, hit := s.readListingCache(ctx, projectID, listingKindImages, folderID, &images)
	if hit {
		metrics.ObserveListingFetch(listingKindImages, "cache", time.Since(start))
		return images, nil
	}

	images, err := s.imageStore.List(projectID, folderID)
	if err != nil {
		return nil, internalError(err, "获取图片列表失败")
	}
	metrics.ObserveListingFetch(listingKindImages, "db", time.Since(start))
	s.writeListingCache(ctx, key, projectID, listingKindImages, images)
	return images, nil
}

// readListingCache 返回本次读取绑定的缓存键，出错时返回空键，调用方不再回写
func (s *Service) readListingCache(ctx context.Context, projectID uint, kind string, parent *uint, dst interface{}) (string, bool) {
	if s.listingTTL() <= 0 {
		return "", false
	}
	key, hit, err := s.listingCache.Get(ctx, projectID, kind, parent, dst)
	if err != nil {
		logging.Named("catalog").Warn("读取列表缓存失败，回退数据库",
			zap.Uint("project_id", projectID), zap.String("kind", kind), zap.Error(err))
		return "", false
	}
	return key, hit
}

func (s *Service) writeListingCache(ctx context.Context, key string, projectID uint, kind string, value interface{}) {
	if err := s.listingCache.Set(ctx, key, value, s.listingTTL()); err != nil {
		logging.Named("catalog").Warn("写入列表缓存失败",
			zap.Uint("project_id", projectID), zap.String("kind", kind), zap.Error(err))
	}
}

func (s *Service) invalidateListings(ctx context.Context, projectIDs ...uint) {
	for _, id := range projectIDs {
		if err := s.listingCache.Invalidate(ctx, id); err != nil {
			logging.Named("catalog").Warn("清理列表缓存失败", zap.Uint("project_id", id), zap.Error(err))
		}
	}
}
