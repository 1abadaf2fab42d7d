package service

import (
	"errors"

	platformservice "dam-workspace-server/internal/platform/service"

	"gorm.io/gorm"
)

// lookupError 记录未找到映射为 not_found，其余映射为 internal
func lookupError(err error, notFoundMessage string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return platformservice.NewNotFoundError(notFoundMessage)
	}
	return internalError(err, "查询失败")
}

func internalError(err error, message string) error {
	return platformservice.WrapInternalError(err, message)
}
