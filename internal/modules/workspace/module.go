package workspace

import (
	"time"

	"dam-workspace-server/internal/modules/workspace/handler"
	"dam-workspace-server/internal/modules/workspace/service"
	platformservice "dam-workspace-server/internal/platform/service"
)

type Module struct {
	Sessions  *service.Sessions
	Navigator *service.Navigator
	Handler   *handler.Handler
}

func New(appService *platformservice.AppService, catalog service.Catalog, heartbeat func() time.Duration) *Module {
	sessions := service.NewSessions(appService)
	navigator := service.NewNavigator(catalog)

	return &Module{
		Sessions:  sessions,
		Navigator: navigator,
		Handler:   handler.New(sessions, navigator, heartbeat),
	}
}
