package service

import (
	"context"

	"dam-workspace-server/internal/model"
)

// Catalog 工作区导航所需的目录后端能力
type Catalog interface {
	ListProjects() ([]model.Project, error)
	GetProject(id uint) (*model.Project, error)
	GetFolder(id uint) (*model.Folder, error)
	FolderAncestors(folder *model.Folder) ([]model.Folder, error)
	ListFolders(ctx context.Context, projectID uint, parentID *uint) ([]model.Folder, error)
	ListImages(ctx context.Context, projectID uint, folderID *uint) ([]model.Image, error)
	DeleteImages(ctx context.Context, ids []uint) (int, error)
	DeleteFolders(ctx context.Context, ids []uint) (int, error)
}
