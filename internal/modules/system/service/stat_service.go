package service

import (
	"runtime"

	"dam-workspace-server/internal/logging"
	moduledto "dam-workspace-server/internal/modules/system/dto"
	platformservice "dam-workspace-server/internal/platform/service"

	"go.uber.org/zap"
)

// AdminGetServerStats 获取后台仪表盘统计数据。
func (s *Service) AdminGetServerStats() (*moduledto.ServerStatsResponse, error) {
	counts, err := s.systemStore.CountCatalog()
	if err != nil {
		logging.Named("system").Error("统计目录数据失败", zap.Error(err))
		return nil, platformservice.WrapInternalError(err, "统计目录数据失败")
	}

	return &moduledto.ServerStatsResponse{
		ProjectCount:        counts.Projects,
		FolderCount:         counts.Folders,
		ImageCount:          counts.Images,
		PublishedImageCount: counts.PublishedImages,
		ActiveWorkspaces:    s.sessions.Len(),
		SystemInfo: moduledto.SystemInfoResponse{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}, nil
}
