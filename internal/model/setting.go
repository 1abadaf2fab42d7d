package model

type Setting struct {
	Key       string `json:"key" gorm:"primaryKey;size:128"`
	Value     string `json:"value"`
	Desc      string `json:"desc"`
	Category  string `json:"category" gorm:"size:64"`
	Sensitive bool   `json:"sensitive" gorm:"not null;default:false"`
}
