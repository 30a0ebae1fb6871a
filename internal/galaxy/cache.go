package galaxy

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"starmap-server/internal/shared/redis"
	"starmap-server/internal/system"
)

// SystemCache keeps regenerated systems in Redis so repeated visits to
// the same system skip generation. The cache is an optimization only:
// a nil client, a miss or a decode error all fall back to regenerating
// from the seed, which yields the identical system by contract.
type SystemCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewSystemCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *SystemCache {
	return &SystemCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func systemKey(seed int64, index int) string {
	return fmt.Sprintf("system:%d:%d", seed, index)
}

// Get returns the cached system or nil on any miss.
func (c *SystemCache) Get(ctx context.Context, seed int64, index int) *system.System {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := c.client.Get(ctx, systemKey(seed, index)).Bytes()
	if err != nil {
		return nil
	}

	var sys system.System
	if err := json.Unmarshal(data, &sys); err != nil {
		c.logger.Warn("Discarding undecodable cached system", "seed", seed, "index", index, "error", err)
		return nil
	}
	return &sys
}

// Put stores a system. Failures are logged and swallowed; generation
// correctness never depends on the cache.
func (c *SystemCache) Put(ctx context.Context, seed int64, index int, sys *system.System) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(sys)
	if err != nil {
		c.logger.Warn("Failed to marshal system for cache", "seed", seed, "index", index, "error", err)
		return
	}

	if err := c.client.Set(ctx, systemKey(seed, index), data, c.ttl).Err(); err != nil {
		c.logger.Warn("Failed to cache system", "seed", seed, "index", index, "error", err)
	}
}
