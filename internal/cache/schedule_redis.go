package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"smileon/config"
	"smileon/internal/domain"
)

// ScheduleCache keeps the assembled month schedule close to the API. The TTL
// is short: the cache only has to absorb the burst of identical month reads
// the booking form and the admin calendar produce, and every mutation
// invalidates the affected month anyway.
type ScheduleCache interface {
	Get(ctx context.Context, year, month int) (domain.Schedule, bool)
	Set(ctx context.Context, year, month int, schedule domain.Schedule)
	Invalidate(ctx context.Context, year, month int)
}

type RedisScheduleCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisScheduleCache(cfg config.RedisConfig, logger *zap.Logger) (*RedisScheduleCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisScheduleCache{
		client: client,
		ttl:    cfg.CacheTTL,
		logger: logger,
	}, nil
}

func monthKey(year, month int) string {
	return fmt.Sprintf("schedule:%04d:%02d", year, month)
}

func (c *RedisScheduleCache) Get(ctx context.Context, year, month int) (domain.Schedule, bool) {
	data, err := c.client.Get(ctx, monthKey(year, month)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("schedule cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var schedule domain.Schedule
	if err := json.Unmarshal(data, &schedule); err != nil {
		c.logger.Warn("schedule cache entry corrupted", zap.Error(err))
		return nil, false
	}

	return schedule, true
}

func (c *RedisScheduleCache) Set(ctx context.Context, year, month int, schedule domain.Schedule) {
	data, err := json.Marshal(schedule)
	if err != nil {
		c.logger.Warn("schedule cache marshal failed", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, monthKey(year, month), data, c.ttl).Err(); err != nil {
		c.logger.Warn("schedule cache write failed", zap.Error(err))
	}
}

func (c *RedisScheduleCache) Invalidate(ctx context.Context, year, month int) {
	if err := c.client.Del(ctx, monthKey(year, month)).Err(); err != nil {
		c.logger.Warn("schedule cache invalidation failed", zap.Error(err))
	}
}

func (c *RedisScheduleCache) Close() error {
	return c.client.Close()
}
