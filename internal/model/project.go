package model

import "time"

type Project struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null;size:128"`
	Slug          string    `json:"slug" gorm:"not null;uniqueIndex;size:128"`
	Description   string    `json:"description"`
	RestrictUsers bool      `json:"restrict_users" gorm:"not null;default:false"`
	CreatedBy     string    `json:"created_by" gorm:"size:64"`
	ModifiedBy    string    `json:"modified_by" gorm:"size:64"`
	CreatedOn     time.Time `json:"created_on" gorm:"autoCreateTime"`
	ModifiedOn    time.Time `json:"modified_on" gorm:"autoUpdateTime"`
}
