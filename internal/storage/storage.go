// Package storage provides the keyed blob store backing the entity
// collections. Persistence is best-effort: a write that fails is dropped and
// a read that fails looks like a missing key, so the application can always
// fall back to its seed data instead of treating storage as fatal.
package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
type Client struct {
	client *redis.Client
}

// New creates a new Redis-backed blob client.
func New(addr, password string, db int) *Client {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// Get returns the blob stored under key, or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		// fail safe: behave like a missing key
		return nil, nil
	}
	return res, nil
}

// Set stores a blob under key with no expiry, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Set(ctx, key, value, 0).Err(); err != nil {
		// fail safe: the most recent mutation is lost, nothing else
		return nil
	}
	return nil
}
