package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"pos-register/internal/domain"
)

// RedisCache keeps computed daily summaries and the live sales tallies
// maintained by the sales worker. Summaries in SQL remain authoritative.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func dailySummaryKey(date time.Time) string {
	return "summary:daily:" + date.Format("2006-01-02")
}

func dailyTallyKey(date time.Time) string {
	return "tally:daily:" + date.Format("2006-01-02")
}

func (c *RedisCache) GetDailySummary(ctx context.Context, date time.Time) (*domain.DailySummary, error) {
	payload, err := c.Client.Get(ctx, dailySummaryKey(date)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary domain.DailySummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *RedisCache) SetDailySummary(ctx context.Context, summary *domain.DailySummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, dailySummaryKey(summary.Date), payload, c.TTL).Err()
}

// RecordOrderTally bumps the per-day counters for one completed order. Amounts
// live in redis as floats; they feed dashboards only, never reports.
func (c *RedisCache) RecordOrderTally(ctx context.Context, event domain.OrderEvent) error {
	key := dailyTallyKey(event.Timestamp)
	pipe := c.Client.Pipeline()
	pipe.HIncrBy(ctx, key, "total_orders", 1)
	pipe.HIncrByFloat(ctx, key, "total_sales", event.Total.InexactFloat64())
	switch event.OrderType {
	case domain.Takeaway:
		pipe.HIncrBy(ctx, key, "takeaway_orders", 1)
		pipe.HIncrByFloat(ctx, key, "takeaway_sales", event.Total.InexactFloat64())
	case domain.Delivery:
		pipe.HIncrBy(ctx, key, "delivery_orders", 1)
		pipe.HIncrByFloat(ctx, key, "delivery_sales", event.Total.InexactFloat64())
	}
	pipe.Expire(ctx, key, 48*time.Hour)
	_, err := pipe.Exec(ctx)
	return err
}
