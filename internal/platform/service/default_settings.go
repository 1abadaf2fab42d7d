package service

import (
	"dam-workspace-server/internal/consts"
	"dam-workspace-server/internal/model"
)

// DefaultSettings 默认配置，顺序即管理后台展示顺序
var DefaultSettings = []model.Setting{
	{Key: consts.ConfigWorkspaceDefaultDisplayStyle, Value: "GRID", Desc: "新会话默认展示方式 (LIST/GRID)", Category: "workspace"},
	{Key: consts.ConfigWorkspaceSessionIdleMinutes, Value: "120", Desc: "工作区会话空闲超时 (分钟)", Category: "workspace"},
	{Key: consts.ConfigBatchDeleteLimit, Value: "50", Desc: "单次批量删除的最大条目数", Category: "workspace"},
	{Key: consts.ConfigListingCacheTTLSeconds, Value: "30", Desc: "列表缓存有效期 (秒，0 表示不缓存)", Category: "cache"},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Desc: "是否开启接口限流", Category: "security"},
	{Key: consts.ConfigRateLimitWorkspaceRPS, Value: "20", Desc: "工作区接口每秒请求限制 (RPS)", Category: "security"},
	{Key: consts.ConfigRateLimitWorkspaceBurst, Value: "40", Desc: "工作区接口突发请求限制", Category: "security"},
	{Key: consts.ConfigRateLimitCatalogRPS, Value: "5", Desc: "目录写接口每秒请求限制 (RPS)", Category: "security"},
	{Key: consts.ConfigRateLimitCatalogBurst, Value: "10", Desc: "目录写接口突发请求限制", Category: "security"},
	{Key: consts.ConfigMaxRequestBodySize, Value: "2", Desc: "接口最大请求体限制 (MB)", Category: "security"},
}
