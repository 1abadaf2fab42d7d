package handler

import (
	"net/http"

	moduledto "dam-workspace-server/internal/modules/catalog/dto"
	"dam-workspace-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// ListImages 列出项目某一层的图片，folder_id 省略时为项目根目录
func (h *Handler) ListImages(c *gin.Context) {
	projectID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	folderID, ok := httpx.ParseOptionalIDQuery(c, "folder_id")
	if !ok {
		return
	}
	images, err := h.catalogService.ListImages(c.Request.Context(), projectID, folderID)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取图片列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": images, "total": len(images)})
}

func (h *Handler) CreateImage(c *gin.Context) {
	projectID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req moduledto.CreateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}
	image, err := h.catalogService.CreateImage(c.Request.Context(), projectID, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "登记图片失败")
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *Handler) GetImage(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	image, err := h.catalogService.GetImage(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取图片失败")
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *Handler) UpdateImage(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req moduledto.UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}
	image, err := h.catalogService.UpdateImage(c.Request.Context(), id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新图片失败")
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *Handler) DeleteImage(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if _, err := h.catalogService.DeleteImages(c.Request.Context(), []uint{id}); err != nil {
		httpx.WriteServiceError(c, err, "删除图片失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "图片已删除"})
}

// BatchDeleteImages 批量删除，单次数量受 batch_delete_limit 限制
func (h *Handler) BatchDeleteImages(c *gin.Context) {
	var req moduledto.BatchDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}
	count, err := h.catalogService.DeleteImages(c.Request.Context(), req.IDs)
	if err != nil {
		httpx.WriteServiceError(c, err, "删除图片失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功", "count": count})
}
