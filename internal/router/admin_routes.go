package router

import (
	settingshandler "dam-workspace-server/internal/modules/settings/handler"
	systemhandler "dam-workspace-server/internal/modules/system/handler"

	"github.com/gin-gonic/gin"
)

func registerAdminRoutes(api *gin.RouterGroup, systemHandler *systemhandler.Handler, settingsHandler *settingshandler.Handler) {
	adminGroup := api.Group("/admin")

	adminGroup.GET("/stats", systemHandler.GetServerStats)

	adminGroup.GET("/settings", settingsHandler.GetSettings)
	adminGroup.GET("/settings/:key", settingsHandler.GetSetting)
	adminGroup.PATCH("/settings", settingsHandler.UpdateSettings)
}
