package model

import "time"

type Folder struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Slug        string `json:"slug" gorm:"not null;size:128;index"`
	Title       string `json:"title" gorm:"not null;size:255"`
	ProjectID   uint   `json:"project_id" gorm:"not null;index"`
	Description string `json:"description"`
	// ParentFolderID 为空表示位于项目根目录
	ParentFolderID *uint     `json:"parent_folder_id" gorm:"index"`
	CreatedBy      string    `json:"created_by" gorm:"size:64"`
	ModifiedBy     string    `json:"modified_by" gorm:"size:64"`
	CreatedOn      time.Time `json:"created_on" gorm:"autoCreateTime"`
	ModifiedOn     time.Time `json:"modified_on" gorm:"autoUpdateTime"`
	Project        Project   `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
}
