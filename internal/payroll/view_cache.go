package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	viewCachePrefix = "payroll:views:"
	viewCacheTTL    = 5 * time.Minute
)

// ViewCache caches rendered payroll list responses in redis. Generation and
// pay mutations invalidate the whole prefix; entries otherwise age out.
type ViewCache struct {
	rdb *redis.Client
}

func NewViewCache(rdb *redis.Client) *ViewCache {
	return &ViewCache{rdb: rdb}
}

func ListKey(periodKey, status string, page, pageSize int) string {
	return fmt.Sprintf("%slist:%s:%s:%d:%d", viewCachePrefix, periodKey, status, page, pageSize)
}

func (c *ViewCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *ViewCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil || c.rdb == nil {
		return
	}

	// Cache writes are best effort.
	_ = c.rdb.Set(ctx, key, payload, viewCacheTTL).Err()
}

func (c *ViewCache) Invalidate(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}

	iter := c.rdb.Scan(ctx, 0, viewCachePrefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
