package currency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// MemoryCache keeps snapshots in process memory.
type MemoryCache struct {
	mu        sync.RWMutex
	snapshots map[string]Snapshot
}

var _ Cache = (*MemoryCache)(nil)

// NewMemoryCache creates an empty MemoryCache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{snapshots: make(map[string]Snapshot)}
}

// Get returns a copy of the stored snapshot for base
func (c *MemoryCache) Get(_ context.Context, base string) (*Snapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.snapshots[base]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

// Set stores snapshot, replacing any previous one for the same base
func (c *MemoryCache) Set(_ context.Context, snapshot *Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[snapshot.Base] = *snapshot
	return nil
}

// RedisCache shares snapshots between API instances.
type RedisCache struct {
	client    *redis.Client
	retention time.Duration
}

var _ Cache = (*RedisCache)(nil)

// NewRedisCache creates a RedisCache. retention is how long a snapshot may
// serve as a stale fallback; it should be well above the freshness TTL.
func NewRedisCache(client *redis.Client, retention time.Duration) *RedisCache {
	return &RedisCache{
		client:    client,
		retention: retention,
	}
}

// ratesKey returns the Redis key for a base currency's snapshot
func (c *RedisCache) ratesKey(base string) string {
	return fmt.Sprintf("currency:rates:%s", base)
}

// Get loads the snapshot for base from Redis
func (c *RedisCache) Get(ctx context.Context, base string) (*Snapshot, error) {
	data, err := c.client.Get(ctx, c.ratesKey(base)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rates from cache: %w", err)
	}

	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached rates: %w", err)
	}
	return &s, nil
}

// Set writes snapshot to Redis with the configured retention
func (c *RedisCache) Set(ctx context.Context, snapshot *Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal rates: %w", err)
	}
	if err := c.client.Set(ctx, c.ratesKey(snapshot.Base), data, c.retention).Err(); err != nil {
		return fmt.Errorf("failed to store rates in cache: %w", err)
	}
	return nil
}
