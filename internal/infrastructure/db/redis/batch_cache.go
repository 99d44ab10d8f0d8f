package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pfaswatch/zipcheck/internal/core/ports"
)

const defaultResultTTL = 24 * time.Hour

// BatchCache stores batch summaries in Redis keyed by upload fingerprint, so
// re-uploading an identical file replays the previous result instead of
// reprocessing it.
type BatchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBatchCache creates a BatchCache wrapping the given Redis client.
// If ttl <= 0, defaultResultTTL is used.
func NewBatchCache(client *redis.Client, ttl time.Duration) *BatchCache {
	if ttl <= 0 {
		ttl = defaultResultTTL
	}
	return &BatchCache{client: client, ttl: ttl}
}

// Get returns the cached summary for key, if one exists.
func (c *BatchCache) Get(ctx context.Context, key string) (*ports.BatchSummary, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("batch cache get: %w", err)
	}

	var summary ports.BatchSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, false, fmt.Errorf("batch cache decode: %w", err)
	}
	return &summary, true, nil
}

// Put stores the summary under key (expires after the configured TTL).
func (c *BatchCache) Put(ctx context.Context, key string, summary *ports.BatchSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("batch cache encode: %w", err)
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}
