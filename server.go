package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dam-workspace-server/internal/config"
	"dam-workspace-server/internal/consts"
	"dam-workspace-server/internal/db"
	"dam-workspace-server/internal/di"
	"dam-workspace-server/internal/logging"
	"dam-workspace-server/internal/platform/cache"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

// bootstrap 加载配置、初始化日志与存储，并组装应用
func bootstrap(configDir string) (*di.Application, *gorm.DB, *redis.Client, error) {
	config.InitConfig(configDir)
	cfg := config.Get()

	if err := logging.Init(logging.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		OutputPath: cfg.Log.OutputPath,
	}); err != nil {
		return nil, nil, nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	config.OnChange(func(c config.Config) {
		logging.SetLevel(c.Log.Level)
	})

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}
	redisClient := cache.NewRedisClient(cfg.Redis)

	app, err := di.InitializeApplication(gdb, redisClient, cfg.Redis)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("组装应用失败: %w", err)
	}
	if err := app.Service.InitializeSettings(); err != nil {
		return nil, nil, nil, fmt.Errorf("初始化系统设置失败: %w", err)
	}
	return app, gdb, redisClient, nil
}

func newEngine(app *di.Application) *gin.Engine {
	gin.SetMode(config.Get().Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	app.Router.Init(r)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "API not found"})
	})
	return r
}

func runServe(configDir string) error {
	app, gdb, redisClient, err := bootstrap(configDir)
	if err != nil {
		return err
	}
	defer closeStores(gdb, redisClient)
	defer func() { _ = logging.Sync() }()

	r := newEngine(app)
	cfg := config.Get()
	logger := logging.Named("server")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessions := app.Modules.Workspace.Sessions
	janitorDone := make(chan struct{})
	go func() {
		defer close(janitorDone)
		sessions.Run(ctx, time.Duration(cfg.Workspace.JanitorIntervalSeconds)*time.Second)
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	printWelcomeMessage()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("服务启动成功", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			stop()
			<-janitorDone
			return fmt.Errorf("服务启动失败: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("正在关闭服务...")
	stop()
	<-janitorDone
	// 先关闭全部会话，SSE 连接随订阅通道关闭而结束，Shutdown 才能及时返回
	sessions.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("服务强制关闭: %w", err)
	}
	logger.Info("服务已退出")
	return nil
}

func closeStores(gdb *gorm.DB, redisClient *redis.Client) {
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func printWelcomeMessage() {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  版本     : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🔥  服务端口 : %s\n", config.Get().Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

type RouteInfo struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

func collectRoutes(r *gin.Engine) []RouteInfo {
	routes := r.Routes()
	list := make([]RouteInfo, 0, len(routes))
	for _, route := range routes {
		list = append(list, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}
	return list
}

func runExportRoutes(configDir, output string) error {
	app, gdb, redisClient, err := bootstrap(configDir)
	if err != nil {
		return err
	}
	defer closeStores(gdb, redisClient)

	data, err := json.MarshalIndent(collectRoutes(newEngine(app)), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("写入路由文件失败: %w", err)
	}
	fmt.Printf("✅ 路由已成功导出到 %s\n", output)
	return nil
}
