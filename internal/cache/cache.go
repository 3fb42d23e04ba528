package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client but fails safe: a missing or unreachable Redis
// behaves like a permanent cache miss.
type Client struct {
	client *redis.Client
}

// New creates a Redis-backed cache client. An empty addr returns a nil
// client, which every method treats as a miss.
func New(addr, password string) *Client {
	if addr == "" {
		return nil
	}
	return &Client{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})}
}

// Get returns the value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		// fail safe: behave like cache miss
		return nil, nil
	}
	return res, nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return nil
	}
	return nil
}

// Delete removes keys, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if c == nil || c.client == nil || len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return nil
	}
	return nil
}
