package router

import (
	"dam-workspace-server/internal/consts"
	"dam-workspace-server/internal/middleware"
	workspacehandler "dam-workspace-server/internal/modules/workspace/handler"
	"dam-workspace-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

func registerWorkspaceRoutes(api *gin.RouterGroup, h *workspacehandler.Handler, appService *service.AppService) {
	ws := api.Group("/workspaces")
	ws.Use(middleware.RateLimitMiddleware(appService, consts.ConfigRateLimitWorkspaceRPS, consts.ConfigRateLimitWorkspaceBurst))

	ws.POST("", h.OpenSession)
	ws.GET("/:sid", h.GetSnapshot)
	ws.DELETE("/:sid", h.CloseSession)
	ws.GET("/:sid/events", h.Events)

	ws.PUT("/:sid/selecting", h.SetSelecting)
	ws.DELETE("/:sid/selection", h.ExitSelectionMode)
	ws.POST("/:sid/selection/delete", h.DeleteSelected)

	ws.GET("/:sid/selection/images/:id", h.IsImageSelected)
	ws.POST("/:sid/selection/images/:id", h.SelectImage)
	ws.DELETE("/:sid/selection/images/:id", h.DeselectImage)
	ws.DELETE("/:sid/selection/images", h.ResetImages)

	ws.GET("/:sid/selection/folders/:id", h.IsFolderSelected)
	ws.POST("/:sid/selection/folders/:id", h.SelectFolder)
	ws.DELETE("/:sid/selection/folders/:id", h.DeselectFolder)
	ws.DELETE("/:sid/selection/folders", h.ResetFolders)

	ws.PUT("/:sid/display-style", h.SetDisplayStyle)
	ws.PUT("/:sid/error", h.SetError)
	ws.DELETE("/:sid/error", h.ClearError)

	ws.POST("/:sid/navigate/projects", h.NavigateProjects)
	ws.POST("/:sid/navigate/projects/:id", h.NavigateProject)
	ws.POST("/:sid/navigate/folders/:id", h.NavigateFolder)
	ws.POST("/:sid/refresh", h.Refresh)
}
