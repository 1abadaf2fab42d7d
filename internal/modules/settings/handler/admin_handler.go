package handler

import (
	"net/http"

	"dam-workspace-server/internal/modules/common/httpx"
	moduledto "dam-workspace-server/internal/modules/settings/dto"

	"github.com/gin-gonic/gin"
)

// GetSettings 返回全部配置；?grouped=true 时按分类聚合
func (h *Handler) GetSettings(c *gin.Context) {
	if c.Query("grouped") == "true" {
		groups, err := h.settingsService.AdminListSettingGroups()
		if err != nil {
			httpx.WriteServiceError(c, err, "获取配置失败")
			return
		}
		c.JSON(http.StatusOK, groups)
		return
	}

	settings, err := h.settingsService.AdminListSettings()
	if err != nil {
		httpx.WriteServiceError(c, err, "获取配置失败")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *Handler) GetSetting(c *gin.Context) {
	setting, err := h.settingsService.AdminGetSetting(c.Param("key"))
	if err != nil {
		httpx.WriteServiceError(c, err, "获取配置失败")
		return
	}
	c.JSON(http.StatusOK, setting)
}

// UpdateSettings 整批校验通过后才会写入
func (h *Handler) UpdateSettings(c *gin.Context) {
	var reqs []moduledto.UpdateSettingRequest
	if err := c.ShouldBindJSON(&reqs); err != nil || len(reqs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	if err := h.settingsService.AdminUpdateSettings(reqs); err != nil {
		httpx.WriteServiceError(c, err, "更新失败")
		return
	}

	c.JSON(http.StatusOK, moduledto.UpdateSettingsResponse{Message: "配置更新成功", Count: len(reqs)})
}
