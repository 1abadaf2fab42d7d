package service

import (
	"context"
	"testing"

	"dam-workspace-server/internal/model"
	"dam-workspace-server/internal/modules/catalog/repo"
	settingsrepo "dam-workspace-server/internal/modules/settings/repo"
	"dam-workspace-server/internal/platform/cache"
	platformservice "dam-workspace-server/internal/platform/service"
	"dam-workspace-server/internal/testutils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func setupTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	return newTestService(t, nil)
}

// setupCachedTestService 使用 miniredis 作为列表缓存，并写入默认配置使缓存 TTL 生效
func setupCachedTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return newTestService(t, client)
}

func newTestService(t *testing.T, client *redis.Client) (*Service, *gorm.DB) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewAppService(settingsrepo.NewSettingRepository(gdb))
	if err := appService.InitializeSettings(); err != nil {
		t.Fatalf("初始化配置失败: %v", err)
	}
	s := New(
		appService,
		repo.NewProjectRepository(gdb),
		repo.NewFolderRepository(gdb),
		repo.NewImageRepository(gdb),
		cache.NewListingCache(client, "test"),
	)
	return s, gdb
}

func seedProject(t *testing.T, gdb *gorm.DB, slug string) *model.Project {
	t.Helper()
	p := &model.Project{Name: slug, Slug: slug}
	if err := gdb.Create(p).Error; err != nil {
		t.Fatalf("创建项目失败: %v", err)
	}
	return p
}

func seedFolder(t *testing.T, gdb *gorm.DB, projectID uint, parentID *uint, title string) *model.Folder {
	t.Helper()
	f := &model.Folder{Title: title, Slug: slugify(title), ProjectID: projectID, ParentFolderID: parentID}
	if err := gdb.Create(f).Error; err != nil {
		t.Fatalf("创建文件夹失败: %v", err)
	}
	return f
}

func seedImage(t *testing.T, gdb *gorm.DB, projectID uint, folderID *uint, name string) *model.Image {
	t.Helper()
	img := &model.Image{Name: name, Slug: slugify(name), Encoding: "image/png", Width: 1, Height: 1, ProjectID: projectID, FolderID: folderID}
	if err := gdb.Create(img).Error; err != nil {
		t.Fatalf("创建图片失败: %v", err)
	}
	return img
}

var bg = context.Background()
