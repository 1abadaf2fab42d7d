package handler

import (
	"dam-workspace-server/internal/model"
	moduledto "dam-workspace-server/internal/modules/settings/dto"
)

// AdminService 后台配置接口依赖的业务能力
type AdminService interface {
	AdminListSettings() ([]model.Setting, error)
	AdminListSettingGroups() ([]moduledto.SettingGroup, error)
	AdminGetSetting(key string) (*model.Setting, error)
	AdminUpdateSettings(items []moduledto.UpdateSettingRequest) error
}

type Handler struct {
	settingsService AdminService
}

func New(settingsService AdminService) *Handler {
	return &Handler{settingsService: settingsService}
}
