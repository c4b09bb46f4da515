package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// SearchCache stores serialized search responses in Redis so repeated
// inventory and route queries skip the upstream providers.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSearchCache creates a new SearchCache.
func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	return &SearchCache{client: client, ttl: ttl}
}

// CachedResponse is a cached HTTP response body with its status code.
type CachedResponse struct {
	StatusCode int             `json:"status_code"`
	Body       json.RawMessage `json:"body"`
}

// Get retrieves a cached response. A cache miss returns (nil, nil).
func (c *SearchCache) Get(ctx context.Context, key string) (*CachedResponse, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var cached CachedResponse
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, err
	}
	return &cached, nil
}

// Set stores a response under the key for the configured TTL.
func (c *SearchCache) Set(ctx context.Context, key string, response *CachedResponse) error {
	data, err := json.Marshal(response)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Invalidate removes a cached response.
func (c *SearchCache) Invalidate(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
