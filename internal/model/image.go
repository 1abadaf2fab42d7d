package model

import "time"

type Image struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null;size:255"`
	Title       string `json:"title" gorm:"size:255"`
	Encoding    string `json:"encoding" gorm:"not null;size:64"`
	Height      int    `json:"height" gorm:"not null"`
	Width       int    `json:"width" gorm:"not null"`
	IsPublished bool   `json:"is_published" gorm:"not null;default:false"`
	ProjectID   uint   `json:"project_id" gorm:"not null;index"`
	// FolderID 为空表示位于项目根目录
	FolderID   *uint     `json:"folder_id" gorm:"index"`
	MetadataID *uint     `json:"metadata_id"`
	Slug       string    `json:"slug" gorm:"not null;size:255;index"`
	CreatedOn  time.Time `json:"created_on" gorm:"autoCreateTime"`
	CreatedBy  string    `json:"created_by" gorm:"size:64"`
	ModifiedOn time.Time `json:"modified_on" gorm:"autoUpdateTime"`
	ModifiedBy string    `json:"modified_by" gorm:"size:64"`
	Project    Project   `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
}
