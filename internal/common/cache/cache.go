package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheService is a thin JSON cache on top of Redis. Keys are owned by the
// services that read through it.
type CacheService struct {
	redisClient *redis.Client
}

func NewCacheService(redisClient *redis.Client) *CacheService {
	return &CacheService{redisClient: redisClient}
}

// Get reads a cached value into dest.
func (c *CacheService) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(data), dest)
}

// Set stores a value under key for ttl.
func (c *CacheService) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return c.redisClient.Set(ctx, key, string(data), ttl).Err()
}

// Delete removes a single key.
func (c *CacheService) Delete(ctx context.Context, key string) error {
	return c.redisClient.Del(ctx, key).Err()
}

// DeletePattern removes every key matching pattern.
func (c *CacheService) DeletePattern(ctx context.Context, pattern string) error {
	keys, err := c.redisClient.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}

	if len(keys) > 0 {
		return c.redisClient.Del(ctx, keys...).Err()
	}

	return nil
}

// GetOrSet reads key into dest, falling back to setter on a miss.
func (c *CacheService) GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, setter func() (interface{}, error)) error {
	if err := c.Get(ctx, key, dest); err == nil {
		return nil
	}

	value, err := setter()
	if err != nil {
		return err
	}

	if err := c.Set(ctx, key, value, ttl); err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// InvalidateWalletCache drops cached wallet lists for a user.
func (c *CacheService) InvalidateWalletCache(ctx context.Context, userID string) error {
	return c.DeletePattern(ctx, fmt.Sprintf("wallets:%s*", userID))
}

// InvalidateAirdropCache drops the cached status snapshot for an event.
func (c *CacheService) InvalidateAirdropCache(ctx context.Context, eventID string) error {
	return c.Delete(ctx, fmt.Sprintf("airdrop_status:%s", eventID))
}
