package service

import (
	"errors"
	"strconv"
	"sync"

	"dam-workspace-server/internal/logging"
	"dam-workspace-server/internal/model"
	settingsrepo "dam-workspace-server/internal/modules/settings/repo"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// defaultValueNotFound 缓存中的"未找到"标记，避免反复查库
const defaultValueNotFound = "||__NOT_FOUND__||"

// AppService 提供运行时配置读取，配置存储在数据库并缓存在内存中
type AppService struct {
	settingStore  settingsrepo.SettingStore
	settingsCache sync.Map
}

func NewAppService(settingStore settingsrepo.SettingStore) *AppService {
	return &AppService{settingStore: settingStore}
}

// InitializeSettings 写入缺失的默认配置并清理已废弃的配置项
func (s *AppService) InitializeSettings() error {
	if err := s.settingStore.InitializeDefaults(DefaultSettings); err != nil {
		return err
	}
	keys := make([]string, 0, len(DefaultSettings))
	for _, def := range DefaultSettings {
		keys = append(keys, def.Key)
	}
	if err := s.settingStore.DeleteNotInKeys(keys); err != nil {
		return err
	}
	s.ClearCache()
	return nil
}

func (s *AppService) ClearCache() {
	s.settingsCache.Range(func(key, value interface{}) bool {
		s.settingsCache.Delete(key)
		return true
	})
}

func (s *AppService) GetString(key string) string {
	if val, ok := s.settingsCache.Load(key); ok {
		if strVal, ok := val.(string); ok {
			if strVal == defaultValueNotFound {
				return ""
			}
			return strVal
		}
		s.settingsCache.Delete(key)
	}

	setting, err := s.settingStore.FindByKey(key)
	if err == nil {
		s.settingsCache.Store(key, setting.Value)
		return setting.Value
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.L().Warn("读取配置失败", zap.String("key", key), zap.Error(err))
	}

	// 数据库没查到，尝试查找默认配置
	if def, ok := findDefaultSetting(key); ok {
		newSetting := def
		// 忽略错误，防止并发写入导致的主键冲突
		_ = s.settingStore.Create(&newSetting)
		s.settingsCache.Store(key, newSetting.Value)
		return newSetting.Value
	}

	s.settingsCache.Store(key, defaultValueNotFound)
	return ""
}

func (s *AppService) GetInt(key string) int {
	val, err := strconv.Atoi(s.GetString(key))
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetFloat64(key string) float64 {
	val, err := strconv.ParseFloat(s.GetString(key), 64)
	if err != nil {
		return 0
	}
	return val
}

func (s *AppService) GetBool(key string) bool {
	// ParseBool 支持 "1", "t", "T", "true", "TRUE", "True"
	val, err := strconv.ParseBool(s.GetString(key))
	if err != nil {
		return false
	}
	return val
}

func findDefaultSetting(key string) (model.Setting, bool) {
	for _, def := range DefaultSettings {
		if def.Key == key {
			return def, true
		}
	}
	return model.Setting{}, false
}
