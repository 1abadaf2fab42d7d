package repo

import (
	"dam-workspace-server/internal/model"

	"gorm.io/gorm"
)

type SystemRepository struct {
	db *gorm.DB
}

func (r *SystemRepository) CountCatalog() (CatalogCounts, error) {
	var counts CatalogCounts
	if err := r.db.Model(&model.Project{}).Count(&counts.Projects).Error; err != nil {
		return counts, err
	}
	if err := r.db.Model(&model.Folder{}).Count(&counts.Folders).Error; err != nil {
		return counts, err
	}
	if err := r.db.Model(&model.Image{}).Count(&counts.Images).Error; err != nil {
		return counts, err
	}
	if err := r.db.Model(&model.Image{}).Where("is_published = ?", true).Count(&counts.PublishedImages).Error; err != nil {
		return counts, err
	}
	return counts, nil
}
