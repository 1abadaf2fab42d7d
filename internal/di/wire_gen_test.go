package di

import (
	"testing"

	"dam-workspace-server/internal/config"
	"dam-workspace-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证依赖注入可以在无 Redis 的情况下组装完整应用。
func TestInitializeApplication_WithoutRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := testutils.SetupDB(t)

	app, err := InitializeApplication(gdb, nil, config.RedisConfig{Prefix: "test"})
	if err != nil {
		t.Fatalf("期望组装成功，实际为: %v", err)
	}
	if app.Router == nil || app.Service == nil || app.Modules == nil {
		t.Fatalf("期望所有组件已注入")
	}
	if app.Modules.Workspace.Sessions == nil || app.Modules.Catalog.Service == nil {
		t.Fatalf("期望业务模块已注入")
	}

	r := gin.New()
	app.Router.Init(r)
	if len(r.Routes()) == 0 {
		t.Fatalf("期望注册路由")
	}
}
