package repo

import "dam-workspace-server/internal/model"

// SettingValue 一条待写入的配置值
type SettingValue struct {
	Key   string
	Value string
}

type SettingStore interface {
	InitializeDefaults(defaults []model.Setting) error
	DeleteNotInKeys(keys []string) error
	FindByKey(key string) (*model.Setting, error)
	Create(setting *model.Setting) error
	FindAll() ([]model.Setting, error)
	// SaveValues 批量写入配置值；敏感配置提交 maskedValue 时视为未修改
	SaveValues(values []SettingValue, maskedValue string) error
}
