package handler

import (
	"net/http"

	moduledto "dam-workspace-server/internal/modules/catalog/dto"
	"dam-workspace-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// ListFolders 列出项目某一层的文件夹，parent_id 省略时为项目根目录
func (h *Handler) ListFolders(c *gin.Context) {
	projectID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	parentID, ok := httpx.ParseOptionalIDQuery(c, "parent_id")
	if !ok {
		return
	}
	folders, err := h.catalogService.ListFolders(c.Request.Context(), projectID, parentID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取文件夹列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": folders, "total": len(folders)})
}

func (h *Handler) CreateFolder(c *gin.Context) {
	projectID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req moduledto.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}
	folder, err := h.catalogService.CreateFolder(c.Request.Context(), projectID, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建文件夹失败")
		return
	}
	c.JSON(http.StatusCreated, folder)
}

// GetFolder 返回文件夹及其祖先链
func (h *Handler) GetFolder(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	folder, err := h.catalogService.GetFolder(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取文件夹失败")
		return
	}
	ancestors, err := h.catalogService.FolderAncestors(folder)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取文件夹失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"folder": folder, "ancestors": ancestors})
}

func (h *Handler) UpdateFolder(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req moduledto.UpdateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}
	folder, err := h.catalogService.UpdateFolder(c.Request.Context(), id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新文件夹失败")
		return
	}
	c.JSON(http.StatusOK, folder)
}

func (h *Handler) DeleteFolder(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.catalogService.DeleteFolders(c.Request.Context(), []uint{id}); err != nil {
		httpx.WriteServiceError(c, err, "删除文件夹失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "文件夹已删除"})
}

func (h *Handler) BatchDeleteFolders(c *gin.Context) {
	var req moduledto.BatchDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}
	count, err := h.catalogService.DeleteFolders(c.Request.Context(), req.IDs)
	if err != nil {
		httpx.WriteServiceError(c, err, "删除文件夹失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功", "count": count})
}
