package handler

import (
	"io"
	"net/http"
	"time"

	"dam-workspace-server/internal/modules/common/httpx"
	moduledto "dam-workspace-server/internal/modules/workspace/dto"

	"github.com/gin-gonic/gin"
)

func (h *Handler) OpenSession(c *gin.Context) {
	sess := h.sessions.Open()
	c.JSON(http.StatusCreated, moduledto.SessionResponse{
		ID:       sess.ID,
		Snapshot: sess.Store.Snapshot(),
	})
}

func (h *Handler) GetSnapshot(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Store.Snapshot())
}

func (h *Handler) CloseSession(c *gin.Context) {
	if err := h.sessions.Close(c.Param("sid")); err != nil {
		httpx.WriteServiceError(c, err, "关闭工作区失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "工作区已关闭"})
}

// Events 以 SSE 推送快照。连接建立时先推送当前快照，之后每次提交推送一次，
// 消费过慢时只保证收到最新版本。心跳同时刷新会话的活跃时间。
func (h *Handler) Events(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	ch, cancel := sess.Store.Subscribe()
	defer cancel()

	heartbeat := time.NewTicker(h.heartbeat())
	defer heartbeat.Stop()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.Stream(func(w io.Writer) bool {
		select {
		case snap, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("snapshot", snap)
			return true
		case <-heartbeat.C:
			if _, err := h.sessions.Get(sess.ID); err != nil {
				return false
			}
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
