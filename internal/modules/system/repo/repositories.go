package repo

import (
	"gorm.io/gorm"
)

// CatalogCounts 目录数据总量
type CatalogCounts struct {
	Projects        int64
	Folders         int64
	Images          int64
	PublishedImages int64
}

type SystemStore interface {
	CountCatalog() (CatalogCounts, error)
}

func NewSystemRepository(db *gorm.DB) SystemStore {
	return &SystemRepository{db: db}
}
