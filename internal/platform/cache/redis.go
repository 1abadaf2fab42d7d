package cache

import (
	"context"
	"strings"
	"time"

	"dam-workspace-server/internal/config"
	"dam-workspace-server/internal/logging"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 按配置创建 Redis 客户端；未启用或连接失败时返回 nil，调用方降级为无缓存模式
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		logging.L().Warn("Redis 不可用，降级为无缓存模式", zap.Error(err))
		return nil
	}

	logging.L().Info("Redis 已连接", zap.String("addr", cfg.Addr), zap.Int("db", cfg.DB))
	return client
}

// Key 基于前缀拼接 Redis 键名
func Key(prefix string, parts ...string) string {
	if prefix == "" {
		prefix = "dam_workspace"
	}
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}
