package handler

import moduledto "dam-workspace-server/internal/modules/system/dto"

// StatsProvider 仪表盘统计数据来源
type StatsProvider interface {
	AdminGetServerStats() (*moduledto.ServerStatsResponse, error)
}

type Handler struct {
	systemService StatsProvider
}

func New(systemService StatsProvider) *Handler {
	return &Handler{systemService: systemService}
}
