package handler

import (
	"net/http"

	"dam-workspace-server/internal/modules/common/httpx"
	moduledto "dam-workspace-server/internal/modules/workspace/dto"
	"dam-workspace-server/internal/modules/workspace/state"

	"github.com/gin-gonic/gin"
)

func (h *Handler) SetSelecting(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	var req moduledto.SetSelectingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}
	c.JSON(http.StatusOK, sess.Store.SetSelecting(*req.Selecting))
}

func (h *Handler) ExitSelectionMode(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sess.Store.ExitSelectionMode())
}

// DeleteSelected 删除已选条目，失败信息同时写入工作区错误槽
func (h *Handler) DeleteSelected(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	result, err := h.navigator.DeleteSelected(c.Request.Context(), sess.Store)
	if err != nil {
		httpx.WriteServiceError(c, err, "删除失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"deleted":  result,
		"snapshot": sess.Store.Snapshot(),
	})
}

// selectionOps 图片与文件夹两套对称的选择操作
type selectionOps struct {
	has    func(*state.Store, uint) bool
	add    func(*state.Store, uint) state.Snapshot
	remove func(*state.Store, uint) state.Snapshot
	reset  func(*state.Store) state.Snapshot
}

var (
	imageSelection = selectionOps{
		has:    (*state.Store).IsSelected,
		add:    (*state.Store).AddImageToSelected,
		remove: (*state.Store).RemoveImageFromSelected,
		reset:  (*state.Store).ResetSelectedImages,
	}
	folderSelection = selectionOps{
		has:    (*state.Store).IsFolderSelected,
		add:    (*state.Store).AddFolderToSelected,
		remove: (*state.Store).RemoveFolderFromSelected,
		reset:  (*state.Store).ResetSelectedFolders,
	}
)

func (h *Handler) IsImageSelected(c *gin.Context)  { h.membership(c, imageSelection) }
func (h *Handler) SelectImage(c *gin.Context)      { h.mutateMember(c, imageSelection.add) }
func (h *Handler) DeselectImage(c *gin.Context)    { h.mutateMember(c, imageSelection.remove) }
func (h *Handler) ResetImages(c *gin.Context)      { h.reset(c, imageSelection) }
func (h *Handler) IsFolderSelected(c *gin.Context) { h.membership(c, folderSelection) }
func (h *Handler) SelectFolder(c *gin.Context)     { h.mutateMember(c, folderSelection.add) }
func (h *Handler) DeselectFolder(c *gin.Context)   { h.mutateMember(c, folderSelection.remove) }
func (h *Handler) ResetFolders(c *gin.Context)     { h.reset(c, folderSelection) }

func (h *Handler) membership(c *gin.Context, ops selectionOps) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, moduledto.MembershipResponse{ID: id, Selected: ops.has(sess.Store, id)})
}

func (h *Handler) mutateMember(c *gin.Context, op func(*state.Store, uint) state.Snapshot) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, op(sess.Store, id))
}

func (h *Handler) reset(c *gin.Context, ops selectionOps) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ops.reset(sess.Store))
}
