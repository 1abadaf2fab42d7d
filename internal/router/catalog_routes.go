package router

import (
	"dam-workspace-server/internal/consts"
	"dam-workspace-server/internal/middleware"
	cataloghandler "dam-workspace-server/internal/modules/catalog/handler"
	"dam-workspace-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

func registerCatalogRoutes(api *gin.RouterGroup, h *cataloghandler.Handler, appService *service.AppService) {
	writeLimiter := middleware.RateLimitMiddleware(appService, consts.ConfigRateLimitCatalogRPS, consts.ConfigRateLimitCatalogBurst)

	api.GET("/projects", h.ListProjects)
	api.GET("/projects/:id", h.GetProject)
	api.GET("/projects/:id/folders", h.ListFolders)
	api.GET("/projects/:id/images", h.ListImages)
	api.GET("/folders/:id", h.GetFolder)
	api.GET("/images/:id", h.GetImage)

	writes := api.Group("", writeLimiter)
	writes.POST("/projects", h.CreateProject)
	writes.PATCH("/projects/:id", h.UpdateProject)
	writes.DELETE("/projects/:id", h.DeleteProject)
	writes.POST("/projects/:id/folders", h.CreateFolder)
	writes.POST("/projects/:id/images", h.CreateImage)

	writes.PATCH("/folders/:id", h.UpdateFolder)
	writes.DELETE("/folders/batch", h.BatchDeleteFolders)
	writes.DELETE("/folders/:id", h.DeleteFolder)

	writes.PATCH("/images/:id", h.UpdateImage)
	writes.DELETE("/images/batch", h.BatchDeleteImages)
	writes.DELETE("/images/:id", h.DeleteImage)
}
