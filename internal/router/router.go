package router

import (
	"dam-workspace-server/internal/config"
	"dam-workspace-server/internal/logging"
	"dam-workspace-server/internal/metrics"
	"dam-workspace-server/internal/middleware"
	"dam-workspace-server/internal/modules"
	"dam-workspace-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

type Router struct {
	modules *modules.AppModules
	service *service.AppService
}

func NewRouter(appModules *modules.AppModules, appService *service.AppService) *Router {
	return &Router{
		modules: appModules,
		service: appService,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	r.Use(logging.Middleware())
	r.Use(metrics.Middleware())
	r.Use(middleware.SecurityHeaders())

	if cfg := config.Get().Metrics; cfg.Enabled {
		r.GET(cfg.Path, metrics.Handler())
	}

	api := r.Group("/api")
	api.Use(middleware.BodyLimitMiddleware(rt.service))

	registerPublicRoutes(api)
	registerWorkspaceRoutes(api, rt.modules.Workspace.Handler, rt.service)
	registerCatalogRoutes(api, rt.modules.Catalog.Handler, rt.service)
	registerAdminRoutes(api, rt.modules.System.Handler, rt.modules.Settings.Handler)
}
