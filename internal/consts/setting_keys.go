package consts

const (

	// ConfigRateLimitEnabled 是否开启限流
	ConfigRateLimitEnabled = "rate_limit_enabled"

	// ConfigRateLimitWorkspaceRPS 工作区接口限流 RPS
	ConfigRateLimitWorkspaceRPS = "rate_limit_workspace_rps"

	// ConfigRateLimitWorkspaceBurst 工作区接口限流 Burst
	ConfigRateLimitWorkspaceBurst = "rate_limit_workspace_burst"

	// ConfigRateLimitCatalogRPS 目录写接口限流 RPS
	ConfigRateLimitCatalogRPS = "rate_limit_catalog_rps"

	// ConfigRateLimitCatalogBurst 目录写接口限流 Burst
	ConfigRateLimitCatalogBurst = "rate_limit_catalog_burst"

	// ConfigMaxRequestBodySize 最大请求体限制 (MB)
	ConfigMaxRequestBodySize = "max_request_body_size"

	// ConfigListingCacheTTLSeconds 列表缓存有效期 (秒)，0 表示不缓存
	ConfigListingCacheTTLSeconds = "listing_cache_ttl_seconds"

	// ConfigWorkspaceDefaultDisplayStyle 新会话默认展示方式 (LIST/GRID)
	ConfigWorkspaceDefaultDisplayStyle = "workspace_default_display_style"

	// ConfigWorkspaceSessionIdleMinutes 工作区会话空闲超时 (分钟)
	ConfigWorkspaceSessionIdleMinutes = "workspace_session_idle_minutes"

	// ConfigBatchDeleteLimit 单次批量删除的最大条目数
	ConfigBatchDeleteLimit = "batch_delete_limit"
)
