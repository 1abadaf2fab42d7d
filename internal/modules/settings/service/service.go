package service

import (
	"dam-workspace-server/internal/modules/settings/repo"
	platformservice "dam-workspace-server/internal/platform/service"
)

// Service 管理后台配置读写。validators 覆盖全部默认配置键，不在其中的键视为未知配置。
type Service struct {
	*platformservice.AppService
	settingStore repo.SettingStore
	validators   map[string]valueValidator
}

func New(appService *platformservice.AppService, settingStore repo.SettingStore) *Service {
	return &Service{
		AppService:   appService,
		settingStore: settingStore,
		validators:   newSettingValidators(),
	}
}
