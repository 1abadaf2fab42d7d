package config

import (
	"os"
	"path/filepath"
	"testing"
)

// 测试内容：验证初始化配置会设置默认值并记录配置目录。
func TestInitConfig_SetsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DAM_WORKSPACE_SERVER_MODE", "debug")

	InitConfig(dir)

	cfg := Get()
	if cfg.Server.Port != "8080" {
		t.Fatalf("期望默认端口 8080，实际为 %q", cfg.Server.Port)
	}
	if cfg.Database.Type != "sqlite" {
		t.Fatalf("期望默认数据库 sqlite，实际为 %q", cfg.Database.Type)
	}
	if cfg.Workspace.HeartbeatSeconds != 15 {
		t.Fatalf("期望默认心跳 15 秒，实际为 %d", cfg.Workspace.HeartbeatSeconds)
	}
	if GetConfigDir() != dir {
		t.Fatalf("期望 config dir %q，实际为 %q", dir, GetConfigDir())
	}
}

// 测试内容：验证环境变量覆盖配置文件与默认值。
func TestInitConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("server:\n  port: \"9090\"\nredis:\n  prefix: from_file\n")
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0644); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}
	t.Setenv("DAM_WORKSPACE_REDIS_PREFIX", "from_env")

	InitConfig(dir)

	cfg := Get()
	if cfg.Server.Port != "9090" {
		t.Fatalf("期望文件中的端口 9090，实际为 %q", cfg.Server.Port)
	}
	if cfg.Redis.Prefix != "from_env" {
		t.Fatalf("期望环境变量覆盖 prefix，实际为 %q", cfg.Redis.Prefix)
	}
}

// 测试内容：验证非法的工作区参数会被规范化为默认值。
func TestNormalize_FixesNonPositiveValues(t *testing.T) {
	cfg := Config{Workspace: WorkspaceConfig{HeartbeatSeconds: -1}}
	normalize(&cfg)
	if cfg.Workspace.HeartbeatSeconds != 15 || cfg.Workspace.JanitorIntervalSeconds != 60 {
		t.Fatalf("期望规范化为默认值，实际为 %+v", cfg.Workspace)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Fatalf("期望默认 metrics 路径，实际为 %q", cfg.Metrics.Path)
	}
}

// 测试内容：验证配置变更回调收到最新配置。
func TestOnChange_NotifiesHooks(t *testing.T) {
	InitConfig(t.TempDir())

	var got Config
	calls := 0
	OnChange(func(cfg Config) {
		got = cfg
		calls++
	})
	notifyChange()

	if calls != 1 {
		t.Fatalf("期望回调 1 次，实际为 %d", calls)
	}
	if got.Server.Port != Get().Server.Port {
		t.Fatalf("期望回调收到当前配置，实际为 %+v", got.Server)
	}
}
