package handler

import (
	"time"

	"dam-workspace-server/internal/modules/common/httpx"
	workspaceservice "dam-workspace-server/internal/modules/workspace/service"

	"github.com/gin-gonic/gin"
)

const defaultHeartbeat = 15 * time.Second

type Handler struct {
	sessions  *workspaceservice.Sessions
	navigator *workspaceservice.Navigator
	heartbeat func() time.Duration
}

// New heartbeat 返回 SSE 心跳间隔，允许配置热更新后生效
func New(sessions *workspaceservice.Sessions, navigator *workspaceservice.Navigator, heartbeat func() time.Duration) *Handler {
	if heartbeat == nil {
		heartbeat = func() time.Duration { return defaultHeartbeat }
	}
	return &Handler{sessions: sessions, navigator: navigator, heartbeat: heartbeat}
}

// session 按路径参数 sid 查找会话，失败时已写入响应
func (h *Handler) session(c *gin.Context) (*workspaceservice.Session, bool) {
	sess, err := h.sessions.Get(c.Param("sid"))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取工作区失败")
		return nil, false
	}
	return sess, true
}
