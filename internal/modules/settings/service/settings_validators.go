package service

import (
	"errors"
	"strconv"

	"dam-workspace-server/internal/consts"
	"dam-workspace-server/internal/modules/workspace/state"
	platformservice "dam-workspace-server/internal/platform/service"
)

// valueValidator 校验已去除首尾空白的配置值
type valueValidator func(value string) error

func newSettingValidators() map[string]valueValidator {
	validators := make(map[string]valueValidator, len(platformservice.DefaultSettings))
	for _, setting := range platformservice.DefaultSettings {
		validators[setting.Key] = acceptAny
	}

	validators[consts.ConfigWorkspaceDefaultDisplayStyle] = func(v string) error {
		if _, ok := state.ParseDisplayStyle(v); !ok {
			return errors.New("展示方式只能为 LIST 或 GRID")
		}
		return nil
	}
	for _, key := range []string{consts.ConfigWorkspaceSessionIdleMinutes, consts.ConfigBatchDeleteLimit} {
		validators[key] = intAtLeast(1, "该配置必须为正整数")
	}
	for _, key := range []string{
		consts.ConfigListingCacheTTLSeconds, consts.ConfigMaxRequestBodySize,
		consts.ConfigRateLimitWorkspaceBurst, consts.ConfigRateLimitCatalogBurst,
	} {
		validators[key] = intAtLeast(0, "该配置必须为非负整数")
	}
	for _, key := range []string{consts.ConfigRateLimitWorkspaceRPS, consts.ConfigRateLimitCatalogRPS} {
		validators[key] = func(v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil || f < 0 {
				return errors.New("RPS 必须为非负数")
			}
			return nil
		}
	}
	validators[consts.ConfigRateLimitEnabled] = func(v string) error {
		if _, err := strconv.ParseBool(v); err != nil {
			return errors.New("限流开关必须为 true 或 false")
		}
		return nil
	}
	return validators
}

func acceptAny(string) error { return nil }

func intAtLeast(lower int, message string) valueValidator {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n < lower {
			return errors.New(message)
		}
		return nil
	}
}
