package repo

import (
	"dam-workspace-server/internal/model"

	"gorm.io/gorm"
)

type ProjectStore interface {
	List() ([]model.Project, error)
	FindByID(id uint) (*model.Project, error)
	FindBySlug(slug string) (*model.Project, error)
	Create(project *model.Project) error
	Update(project *model.Project, fields map[string]interface{}) error
	Delete(id uint) error
	CountContents(id uint) (int64, error)
}

type FolderStore interface {
	ListChildren(projectID uint, parentID *uint) ([]model.Folder, error)
	FindByID(id uint) (*model.Folder, error)
	FindByIDs(ids []uint) ([]model.Folder, error)
	Create(folder *model.Folder) error
	Update(folder *model.Folder, fields map[string]interface{}) error
	DeleteByIDs(ids []uint) error
	// CountContents 统计直接内容，ignoreFolders 中的子文件夹不计入
	CountContents(id uint, ignoreFolders []uint) (int64, error)
}

type ImageStore interface {
	List(projectID uint, folderID *uint) ([]model.Image, error)
	FindByID(id uint) (*model.Image, error)
	FindByIDs(ids []uint) ([]model.Image, error)
	Create(image *model.Image) error
	Update(image *model.Image, fields map[string]interface{}) error
	DeleteByIDs(ids []uint) error
}

func NewProjectRepository(db *gorm.DB) ProjectStore {
	return &ProjectRepository{db: db}
}

func NewFolderRepository(db *gorm.DB) FolderStore {
	return &FolderRepository{db: db}
}

func NewImageRepository(db *gorm.DB) ImageStore {
	return &ImageRepository{db: db}
}
