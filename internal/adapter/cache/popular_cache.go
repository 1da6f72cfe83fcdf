package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"search-orchestrator/internal/domain"
)

// PopularSearchCache is a short-TTL Redis cache in front of the
// popular-searches aggregate. The aggregate scans seven days of query-log
// rows on every read, so the hot path is served from cache; every Redis
// failure degrades to recomputation.
type PopularSearchCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewPopularSearchCache(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *PopularSearchCache {
	return &PopularSearchCache{rdb: rdb, ttl: ttl, logger: logger}
}

func (c *PopularSearchCache) key(limit int) string {
	return fmt.Sprintf("search:popular:%d", limit)
}

func (c *PopularSearchCache) Get(ctx context.Context, limit int) ([]domain.PopularSearch, bool) {
	data, err := c.rdb.Get(ctx, c.key(limit)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("popular cache read failed", "error", err)
		}
		return nil, false
	}

	var entries []domain.PopularSearch
	if err := json.Unmarshal(data, &entries); err != nil {
		c.logger.Warn("popular cache payload corrupt", "error", err)
		return nil, false
	}
	return entries, true
}

func (c *PopularSearchCache) Set(ctx context.Context, limit int, entries []domain.PopularSearch) {
	data, err := json.Marshal(entries)
	if err != nil {
		c.logger.Warn("popular cache marshal failed", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, c.key(limit), data, c.ttl).Err(); err != nil {
		c.logger.Warn("popular cache write failed", "error", err)
	}
}
