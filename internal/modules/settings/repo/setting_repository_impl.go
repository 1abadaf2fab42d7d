package repo

import (
	"fmt"
	"slices"

	"dam-workspace-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var keyColumn = clause.Column{Name: "key"}

// SettingRepository 基于 gorm 的配置存储；key 为保留字，条件一律走 clause 以便各数据库正确转义
type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) SettingStore {
	return &SettingRepository{db: db}
}

// InitializeDefaults 写入缺失的默认配置；已存在的键只刷新描述信息，保留当前值
func (r *SettingRepository) InitializeDefaults(defaults []model.Setting) error {
	if len(defaults) == 0 {
		return nil
	}
	rows := slices.Clone(defaults)
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{keyColumn},
		DoUpdates: clause.AssignmentColumns([]string{"desc", "category", "sensitive"}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("写入默认配置失败: %w", err)
	}
	return nil
}

func (r *SettingRepository) DeleteNotInKeys(keys []string) error {
	tx := r.db.Session(&gorm.Session{AllowGlobalUpdate: true})
	if len(keys) > 0 {
		values := make([]interface{}, len(keys))
		for i, k := range keys {
			values[i] = k
		}
		tx = tx.Where(clause.Not(clause.IN{Column: keyColumn, Values: values}))
	}
	return tx.Delete(&model.Setting{}).Error
}

func (r *SettingRepository) FindByKey(key string) (*model.Setting, error) {
	var setting model.Setting
	if err := r.db.Where(clause.Eq{Column: keyColumn, Value: key}).Take(&setting).Error; err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingRepository) Create(setting *model.Setting) error {
	return r.db.Create(setting).Error
}

func (r *SettingRepository) FindAll() ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.db.Order(clause.OrderByColumn{Column: keyColumn}).Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *SettingRepository) SaveValues(values []SettingValue, maskedValue string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, v := range values {
			if v.Value == maskedValue {
				var current model.Setting
				err := tx.Where(clause.Eq{Column: keyColumn, Value: v.Key}).Take(&current).Error
				if err == nil && current.Sensitive {
					continue
				}
			}

			row := model.Setting{Key: v.Key, Value: v.Value}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{keyColumn},
				DoUpdates: clause.AssignmentColumns([]string{"value"}),
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("写入配置 %q 失败: %w", v.Key, err)
			}
		}
		return nil
	})
}
