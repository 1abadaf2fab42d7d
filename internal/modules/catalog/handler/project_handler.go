package handler

import (
	"net/http"

	moduledto "dam-workspace-server/internal/modules/catalog/dto"
	"dam-workspace-server/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.catalogService.ListProjects()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取项目列表失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": projects, "total": len(projects)})
}

func (h *Handler) GetProject(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	project, err := h.catalogService.GetProject(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取项目失败")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) CreateProject(c *gin.Context) {
	var req moduledto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}
	project, err := h.catalogService.CreateProject(req)
	if err != nil {
		httpx.WriteServiceError(c, err, "创建项目失败")
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	var req moduledto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}
	project, err := h.catalogService.UpdateProject(id, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新项目失败")
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteProject(c.Request.Context(), id); err != nil {
		httpx.WriteServiceError(c, err, "删除项目失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "项目已删除"})
}
