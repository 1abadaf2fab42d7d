package service

import (
	"cmp"
	"slices"

	"dam-workspace-server/internal/model"
	moduledto "dam-workspace-server/internal/modules/settings/dto"
	platformservice "dam-workspace-server/internal/platform/service"
)

const maskedSettingValue = "**********"

// settingRank 默认配置按定义顺序排在前面，其余按分类和键名排序
type settingRank struct {
	known    bool
	index    int
	category int
}

var (
	defaultSettingOrderByKey = make(map[string]int, len(platformservice.DefaultSettings))
	defaultCategoryOrder     = make(map[string]int)
)

func init() {
	for i, setting := range platformservice.DefaultSettings {
		defaultSettingOrderByKey[setting.Key] = i
		if _, ok := defaultCategoryOrder[setting.Category]; !ok {
			defaultCategoryOrder[setting.Category] = len(defaultCategoryOrder)
		}
	}
}

func maskSensitiveSettings(settings []model.Setting) {
	for i := range settings {
		if settings[i].Sensitive {
			settings[i].Value = maskedSettingValue
		}
	}
}

func rankOf(setting model.Setting) settingRank {
	idx, known := defaultSettingOrderByKey[setting.Key]
	category, ok := defaultCategoryOrder[setting.Category]
	if !ok {
		category = len(defaultCategoryOrder)
	}
	return settingRank{known: known, index: idx, category: category}
}

// sortSettingsForAdmin 保证管理后台每次看到的顺序一致
func sortSettingsForAdmin(settings []model.Setting) {
	slices.SortStableFunc(settings, func(a, b model.Setting) int {
		ra, rb := rankOf(a), rankOf(b)
		if ra.known != rb.known {
			if ra.known {
				return -1
			}
			return 1
		}
		if ra.known {
			return cmp.Compare(ra.index, rb.index)
		}
		return cmp.Or(
			cmp.Compare(ra.category, rb.category),
			cmp.Compare(a.Category, b.Category),
			cmp.Compare(a.Key, b.Key),
		)
	})
}

// groupSettings 按分类聚合，分类顺序沿用排序结果
func groupSettings(settings []model.Setting) []moduledto.SettingGroup {
	groups := make([]moduledto.SettingGroup, 0, len(defaultCategoryOrder))
	for _, setting := range settings {
		n := len(groups)
		if n == 0 || groups[n-1].Category != setting.Category {
			groups = append(groups, moduledto.SettingGroup{Category: setting.Category})
			n++
		}
		groups[n-1].Items = append(groups[n-1].Items, setting)
	}
	return groups
}
