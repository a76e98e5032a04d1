package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"video-tube/domain/model"
	"video-tube/infrastructure/logger"
)

func NewCache(ctx context.Context, addr, username, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

type IStatsCache interface {
	GetStats(ctx context.Context, owner string) (*model.ChannelStats, error)
	SetStats(ctx context.Context, owner string, stats model.ChannelStats)
}

// StatsCache keeps dashboard aggregates in redis for a short window. A nil
// redis client turns every operation into a no-op, so the service runs fine
// without redis.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client) IStatsCache {
	return &StatsCache{client: client, ttl: 30 * time.Second}
}

func statsKey(owner string) string {
	return fmt.Sprintf("dashboard:stats:%s", owner)
}

func (c *StatsCache) GetStats(ctx context.Context, owner string) (*model.ChannelStats, error) {
	if c.client == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, statsKey(owner)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats model.ChannelStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *StatsCache) SetStats(ctx context.Context, owner string, stats model.ChannelStats) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsKey(owner), raw, c.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to cache dashboard stats")
	}
}
