package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrResponseNotFound is returned by Take when the id is unknown or the
// response was already consumed.
var ErrResponseNotFound = errors.New("response not found")

const (
	responseKeyPrefix = "response:pending:"
	responseCacheTTL  = 24 * time.Hour
)

// RedisResponseCache holds pending responses in Redis. Entries expire after
// responseCacheTTL so responses that never receive feedback do not accumulate.
type RedisResponseCache struct {
	redis *redis.Client
}

var _ IResponseCache = (*RedisResponseCache)(nil)

func NewRedisResponseCache(client *redis.Client) *RedisResponseCache {
	return &RedisResponseCache{redis: client}
}

// Put stores the content under a fresh opaque id and returns the id.
func (c *RedisResponseCache) Put(ctx context.Context, content string) (string, error) {
	id := uuid.New().String()
	if err := c.redis.Set(ctx, responseKeyPrefix+id, content, responseCacheTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to cache response: %w", err)
	}
	return id, nil
}

// Take returns the content for id and removes it atomically. A second Take
// for the same id returns ErrResponseNotFound.
func (c *RedisResponseCache) Take(ctx context.Context, id string) (string, error) {
	content, err := c.redis.GetDel(ctx, responseKeyPrefix+id).Result()
	if err == redis.Nil {
		return "", ErrResponseNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to take cached response: %w", err)
	}
	return content, nil
}

// MemoryResponseCache is the mutex-guarded in-process implementation, used in
// tests and single-node development. Entries it never consumes stay forever;
// deployments that care use RedisResponseCache and its TTL.
type MemoryResponseCache struct {
	mu        sync.Mutex
	responses map[string]string
}

var _ IResponseCache = (*MemoryResponseCache)(nil)

func NewMemoryResponseCache() *MemoryResponseCache {
	return &MemoryResponseCache{responses: make(map[string]string)}
}

func (c *MemoryResponseCache) Put(ctx context.Context, content string) (string, error) {
	id := uuid.New().String()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.responses[id] = content
	return id, nil
}

func (c *MemoryResponseCache) Take(ctx context.Context, id string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	content, ok := c.responses[id]
	if !ok {
		return "", ErrResponseNotFound
	}
	delete(c.responses, id)
	return content, nil
}
