package service

import (
	"errors"
	"strings"

	"dam-workspace-server/internal/model"
	moduledto "dam-workspace-server/internal/modules/settings/dto"
	settingsrepo "dam-workspace-server/internal/modules/settings/repo"
	platformservice "dam-workspace-server/internal/platform/service"

	"gorm.io/gorm"
)

// AdminListSettings 获取全部系统设置。
func (s *Service) AdminListSettings() ([]model.Setting, error) {
	settings, err := s.settingStore.FindAll()
	if err != nil {
		return nil, platformservice.WrapInternalError(err, "获取配置失败")
	}

	sortSettingsForAdmin(settings)
	maskSensitiveSettings(settings)
	return settings, nil
}

// AdminListSettingGroups 按分类返回配置，供后台分组展示
func (s *Service) AdminListSettingGroups() ([]moduledto.SettingGroup, error) {
	settings, err := s.AdminListSettings()
	if err != nil {
		return nil, err
	}
	return groupSettings(settings), nil
}

// AdminGetSetting 获取单个配置，敏感值脱敏
func (s *Service) AdminGetSetting(key string) (*model.Setting, error) {
	setting, err := s.settingStore.FindByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("配置不存在")
		}
		return nil, platformservice.WrapInternalError(err, "获取配置失败")
	}
	items := []model.Setting{*setting}
	maskSensitiveSettings(items)
	return &items[0], nil
}

// AdminUpdateSettings 批量更新系统设置，并在成功后清理配置缓存。
func (s *Service) AdminUpdateSettings(items []moduledto.UpdateSettingRequest) error {
	for _, item := range items {
		if err := s.validateSettingUpdate(item); err != nil {
			return err
		}
	}

	values := make([]settingsrepo.SettingValue, 0, len(items))
	for _, item := range items {
		values = append(values, settingsrepo.SettingValue{
			Key:   item.Key,
			Value: strings.TrimSpace(item.Value),
		})
	}

	if err := s.settingStore.SaveValues(values, maskedSettingValue); err != nil {
		return platformservice.WrapInternalError(err, "更新失败")
	}

	s.ClearCache()
	return nil
}

func (s *Service) validateSettingUpdate(item moduledto.UpdateSettingRequest) error {
	if strings.TrimSpace(item.Key) == "" {
		return platformservice.NewValidationError("配置键不能为空")
	}
	validate, known := s.validators[item.Key]
	if !known {
		return platformservice.NewValidationError("未知的配置项: " + item.Key)
	}
	if err := validate(strings.TrimSpace(item.Value)); err != nil {
		return platformservice.NewValidationError(err.Error())
	}
	return nil
}
