package dto

import "dam-workspace-server/internal/model"

type UpdateSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

type UpdateSettingsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SettingGroup 同一分类下的配置项
type SettingGroup struct {
	Category string          `json:"category"`
	Items    []model.Setting `json:"items"`
}
