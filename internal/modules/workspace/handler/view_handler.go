package handler

import (
	"net/http"

	moduledto "dam-workspace-server/internal/modules/workspace/dto"
	"dam-workspace-server/internal/modules/workspace/state"

	"github.com/gin-gonic/gin"
)

// SetDisplayStyle 只接受 LIST 或 GRID
func (h *Handler) SetDisplayStyle(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var req moduledto.SetDisplayStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}
	style, valid := state.ParseDisplayStyle(req.Style)
	if !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "展示方式只能是 LIST 或 GRID"})
		return
	}
	c.JSON(http.StatusOK, sess.Store.SetDisplayStyle(style))
}

func (h *Handler) SetError(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var req moduledto.SetErrorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}
	c.JSON(http.StatusOK, sess.Store.SetError(req.Error))
}

func (h *Handler) ClearError(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Store.ClearError())
}
