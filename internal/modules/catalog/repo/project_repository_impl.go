package repo

import (
	"dam-workspace-server/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func (r *ProjectRepository) List() ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.Order("name asc, id asc").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) FindByID(id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) FindBySlug(slug string) (*model.Project, error) {
	var project model.Project
	if err := r.db.Where("slug = ?", slug).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Create(project *model.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepository) Update(project *model.Project, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.Model(project).Updates(fields).Error
}

func (r *ProjectRepository) Delete(id uint) error {
	return r.db.Delete(&model.Project{}, id).Error
}

// CountContents 统计项目下的文件夹与图片总数
func (r *ProjectRepository) CountContents(id uint) (int64, error) {
	var folders, images int64
	if err := r.db.Model(&model.Folder{}).Where("project_id = ?", id).Count(&folders).Error; err != nil {
		return 0, err
	}
	if err := r.db.Model(&model.Image{}).Where("project_id = ?", id).Count(&images).Error; err != nil {
		return 0, err
	}
	return folders + images, nil
}
