package cache

import (
	"context"
	"testing"
	"time"

	"dam-workspace-server/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newMiniredisCache(t *testing.T) (*ListingCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewListingCache(client, "t"), mr
}

// 测试内容：验证键名拼接与默认前缀。
func TestKey(t *testing.T) {
	if got := Key("", "a", "b"); got != "dam_workspace:a:b" {
		t.Fatalf("期望默认前缀，实际为 %q", got)
	}
	if got := Key("x"); got != "x" {
		t.Fatalf("期望仅前缀，实际为 %q", got)
	}
}

// 测试内容：验证未启用 Redis 时返回 nil 客户端。
func TestNewRedisClient_Disabled(t *testing.T) {
	if c := NewRedisClient(config.RedisConfig{Enabled: false}); c != nil {
		t.Fatalf("期望未启用时返回 nil")
	}
}

// 测试内容：验证 Redis 不可达时降级为 nil 客户端。
func TestNewRedisClient_UnreachableDegrades(t *testing.T) {
	if c := NewRedisClient(config.RedisConfig{Enabled: true, Addr: "127.0.0.1:1"}); c != nil {
		t.Fatalf("期望不可达时返回 nil")
	}
}

// 测试内容：验证无客户端时列表缓存全部为空操作。
func TestListingCache_NilClientIsNoop(t *testing.T) {
	c := NewListingCache(nil, "t")
	ctx := context.Background()

	var dst []string
	key, hit, err := c.Get(ctx, 1, "folders", nil, &dst)
	if hit || err != nil || key != "" {
		t.Fatalf("期望未命中且无错误，实际为 key=%q hit=%v err=%v", key, hit, err)
	}
	if err := c.Set(ctx, key, []string{"a"}, time.Minute); err != nil {
		t.Fatalf("期望 Set 为空操作: %v", err)
	}
	if err := c.Invalidate(ctx, 1); err != nil {
		t.Fatalf("期望 Invalidate 为空操作: %v", err)
	}
}

// 测试内容：验证 Redis 不可用时列表缓存返回错误，由调用方降级。
func TestListingCache_UnavailableRedisReturnsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
	})
	defer func() { _ = client.Close() }()
	c := NewListingCache(client, "t")

	var dst []string
	_, hit, err := c.Get(context.Background(), 1, "images", nil, &dst)
	if err == nil || hit {
		t.Fatalf("期望 redis 错误，实际为 hit=%v err=%v", hit, err)
	}
}

// 测试内容：验证写入后命中，且不同层级、不同类型互不干扰。
func TestListingCache_HitAfterSet(t *testing.T) {
	c, _ := newMiniredisCache(t)
	ctx := context.Background()
	parent := uint(7)

	var dst []string
	key, hit, err := c.Get(ctx, 1, "images", &parent, &dst)
	if err != nil || hit || key == "" {
		t.Fatalf("期望首次未命中并返回键，实际为 key=%q hit=%v err=%v", key, hit, err)
	}
	if err := c.Set(ctx, key, []string{"a.png", "b.png"}, time.Minute); err != nil {
		t.Fatalf("写入缓存失败: %v", err)
	}

	_, hit, err = c.Get(ctx, 1, "images", &parent, &dst)
	if err != nil || !hit {
		t.Fatalf("期望命中，实际为 hit=%v err=%v", hit, err)
	}
	if len(dst) != 2 || dst[0] != "a.png" {
		t.Fatalf("期望读到写入的列表，实际为 %v", dst)
	}

	var other []string
	if _, hit, _ := c.Get(ctx, 1, "images", nil, &other); hit {
		t.Fatalf("期望根目录不命中子目录的缓存")
	}
	if _, hit, _ := c.Get(ctx, 1, "folders", &parent, &other); hit {
		t.Fatalf("期望文件夹列表不命中图片列表的缓存")
	}
}

// 测试内容：验证写入缓存带有过期时间。
func TestListingCache_SetAppliesTTL(t *testing.T) {
	c, mr := newMiniredisCache(t)
	ctx := context.Background()

	var dst []string
	key, _, _ := c.Get(ctx, 1, "folders", nil, &dst)
	if err := c.Set(ctx, key, []string{"x"}, 30*time.Second); err != nil {
		t.Fatalf("写入缓存失败: %v", err)
	}
	if ttl := mr.TTL(key); ttl != 30*time.Second {
		t.Fatalf("期望 TTL 为 30s，实际为 %v", ttl)
	}
	mr.FastForward(31 * time.Second)
	if _, hit, _ := c.Get(ctx, 1, "folders", nil, &dst); hit {
		t.Fatalf("期望过期后不再命中")
	}
}

// 测试内容：验证失效只影响对应项目，失效后原列表不再命中。
func TestListingCache_MissAfterInvalidate(t *testing.T) {
	c, _ := newMiniredisCache(t)
	ctx := context.Background()

	var dst []string
	for _, pid := range []uint{1, 2} {
		key, _, _ := c.Get(ctx, pid, "folders", nil, &dst)
		if err := c.Set(ctx, key, []string{"f"}, time.Minute); err != nil {
			t.Fatalf("写入缓存失败: %v", err)
		}
	}
	if err := c.Invalidate(ctx, 1); err != nil {
		t.Fatalf("失效缓存失败: %v", err)
	}

	if _, hit, _ := c.Get(ctx, 1, "folders", nil, &dst); hit {
		t.Fatalf("期望项目 1 失效后不命中")
	}
	if _, hit, _ := c.Get(ctx, 2, "folders", nil, &dst); !hit {
		t.Fatalf("期望项目 2 的缓存不受影响")
	}
}

// 测试内容：验证读库期间发生写操作时，回写的旧列表不会在失效后被读到。
func TestListingCache_StaleWriteAfterInvalidateIsNotServed(t *testing.T) {
	c, _ := newMiniredisCache(t)
	ctx := context.Background()

	var dst []string
	key, hit, err := c.Get(ctx, 1, "images", nil, &dst)
	if err != nil || hit {
		t.Fatalf("期望首次未命中，实际为 hit=%v err=%v", hit, err)
	}
	stale := []string{"deleted.png"}

	// 读库之后、回写之前项目发生了写操作
	if err := c.Invalidate(ctx, 1); err != nil {
		t.Fatalf("失效缓存失败: %v", err)
	}
	if err := c.Set(ctx, key, stale, time.Minute); err != nil {
		t.Fatalf("回写缓存失败: %v", err)
	}

	dst = nil
	if _, hit, _ := c.Get(ctx, 1, "images", nil, &dst); hit {
		t.Fatalf("期望不命中旧代数写入的列表，实际读到 %v", dst)
	}
}
