package handler

import (
	"net/http"

	"dam-workspace-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// 导航接口失败时除了返回错误，错误信息也会写入工作区错误槽并推送给订阅者

func (h *Handler) NavigateProjects(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	if err := h.navigator.LoadProjects(c.Request.Context(), sess.Store); err != nil {
		httpx.WriteServiceError(c, err, "获取项目列表失败")
		return
	}
	c.JSON(http.StatusOK, sess.Store.Snapshot())
}

func (h *Handler) NavigateProject(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.navigator.OpenProject(c.Request.Context(), sess.Store, id); err != nil {
		httpx.WriteServiceError(c, err, "打开项目失败")
		return
	}
	c.JSON(http.StatusOK, sess.Store.Snapshot())
}

func (h *Handler) NavigateFolder(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.navigator.OpenFolder(c.Request.Context(), sess.Store, id); err != nil {
		httpx.WriteServiceError(c, err, "打开文件夹失败")
		return
	}
	c.JSON(http.StatusOK, sess.Store.Snapshot())
}

func (h *Handler) Refresh(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	if err := h.navigator.Refresh(c.Request.Context(), sess.Store); err != nil {
		httpx.WriteServiceError(c, err, "刷新失败")
		return
	}
	c.JSON(http.StatusOK, sess.Store.Snapshot())
}
