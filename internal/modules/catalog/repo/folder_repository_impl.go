package repo

import (
	"dam-workspace-server/internal/model"

	"gorm.io/gorm"
)

type FolderRepository struct {
	db *gorm.DB
}

// ListChildren parentID 为空时列出项目根目录下的文件夹
func (r *FolderRepository) ListChildren(projectID uint, parentID *uint) ([]model.Folder, error) {
	var folders []model.Folder
	query := r.db.Where("project_id = ?", projectID)
	if parentID == nil {
		query = query.Where("parent_folder_id IS NULL")
	} else {
		query = query.Where("parent_folder_id = ?", *parentID)
	}
	if err := query.Order("title asc, id asc").Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *FolderRepository) FindByID(id uint) (*model.Folder, error) {
	var folder model.Folder
	if err := r.db.First(&folder, id).Error; err != nil {
		return nil, err
	}
	return &folder, nil
}

func (r *FolderRepository) FindByIDs(ids []uint) ([]model.Folder, error) {
	var folders []model.Folder
	if err := r.db.Where("id IN ?", ids).Find(&folders).Error; err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *FolderRepository) Create(folder *model.Folder) error {
	return r.db.Create(folder).Error
}

func (r *FolderRepository) Update(folder *model.Folder, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(folder).Updates(fields).Error
}

func (r *FolderRepository) DeleteByIDs(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Where("id IN ?", ids).Delete(&model.Folder{}).Error
}

// CountContents 统计文件夹下的子文件夹与图片总数
func (r *FolderRepository) CountContents(id uint, ignoreFolders []uint) (int64, error) {
	var folders, images int64
	query := r.db.Model(&model.Folder{}).Where("parent_folder_id = ?", id)
	if len(ignoreFolders) > 0 {
		query = query.Where("id NOT IN ?", ignoreFolders)
	}
	if err := query.Count(&folders).Error; err != nil {
		return 0, err
	}
	if err := r.db.Model(&model.Image{}).Where("folder_id = ?", id).Count(&images).Error; err != nil {
		return 0, err
	}
	return folders + images, nil
}
