package service

import (
	"dam-workspace-server/internal/modules/system/repo"
	platformservice "dam-workspace-server/internal/platform/service"
)

// SessionCounter 提供当前活跃的工作区会话数
type SessionCounter interface {
	Len() int
}

type Service struct {
	*platformservice.AppService
	systemStore repo.SystemStore
	sessions    SessionCounter
}

func New(
	appService *platformservice.AppService,
	systemStore repo.SystemStore,
	sessions SessionCounter,
) *Service {
	return &Service{
		AppService:  appService,
		systemStore: systemStore,
		sessions:    sessions,
	}
}
