package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"dam-workspace-server/internal/metrics"

	"github.com/redis/go-redis/v9"
)

// ListingCache 缓存项目内的文件夹/图片列表。
// 每个项目有一个代数键，写操作递增代数，旧代数下的列表键自然过期，无需扫描删除。
type ListingCache struct {
	client *redis.Client
	prefix string
}

// NewListingCache client 为 nil 时所有操作都是空操作
func NewListingCache(client *redis.Client, prefix string) *ListingCache {
	return &ListingCache{client: client, prefix: prefix}
}

func (c *ListingCache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *ListingCache) generationKey(projectID uint) string {
	return Key(c.prefix, "listing", "p"+strconv.FormatUint(uint64(projectID), 10), "gen")
}

func (c *ListingCache) listingKey(ctx context.Context, projectID uint, kind string, parent *uint) (string, error) {
	gen, err := c.client.Get(ctx, c.generationKey(projectID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	scope := "root"
	if parent != nil {
		scope = strconv.FormatUint(uint64(*parent), 10)
	}
	return Key(c.prefix, "listing",
		"p"+strconv.FormatUint(uint64(projectID), 10),
		"g"+strconv.FormatInt(gen, 10),
		kind, scope), nil
}

// Get 命中时把缓存内容解码到 dst 并返回 true。
// 返回的 key 绑定读取时所见的代数，未命中时应原样交给 Set：
// 读库期间若发生写操作，旧代数的键不会再被读取，过期数据也就不会被送出。
func (c *ListingCache) Get(ctx context.Context, projectID uint, kind string, parent *uint, dst interface{}) (string, bool, error) {
	if !c.Enabled() {
		return "", false, nil
	}
	key, err := c.listingKey(ctx, projectID, kind, parent)
	if err != nil {
		metrics.RecordListingCache("error")
		return "", false, err
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordListingCache("miss")
		return key, false, nil
	}
	if err != nil {
		metrics.RecordListingCache("error")
		return key, false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		metrics.RecordListingCache("error")
		return key, false, err
	}
	metrics.RecordListingCache("hit")
	return key, true, nil
}

// Set 写入 Get 返回的 key；key 为空表示缓存不可用
func (c *ListingCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !c.Enabled() || key == "" || ttl <= 0 {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}

// Invalidate 使项目下所有列表缓存失效
func (c *ListingCache) Invalidate(ctx context.Context, projectID uint) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Incr(ctx, c.generationKey(projectID)).Err()
}
