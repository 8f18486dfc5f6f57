// Package redis stores rendered fragments in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/lessonmark"
	backend "github.com/redis/go-redis/v9"
)

// Interface compliance check.
var _ lessonmark.RenderCache = (*Cache)(nil)

// DefaultPrefix namespaces render cache keys.
const DefaultPrefix = "lessonmark:render:"

// Cache implements lessonmark.RenderCache using Redis strings.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures a [Cache].
type Option func(*Cache)

// WithTTL sets the expiration used when Set is called with a zero TTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) { c.prefix = prefix }
}

// New creates a Cache connected to the Redis server at address.
func New(address, password string, db int, opts ...Option) *Cache {
	return NewFromClient(backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	}), opts...)
}

// NewFromClient creates a Cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Cache) key(k string) string {
	return c.prefix + k
}

// Get returns the fragment stored under key. A missing key is reported
// with ok=false and a nil error.
func (c *Cache) Get(ctx context.Context, key string) (string, bool, error) {
	html, err := c.client.Get(ctx, c.key(key)).Result()
	if errors.Is(err, backend.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return html, true, nil
}

// Set stores a fragment. A zero ttl falls back to the cache's default;
// when both are zero the entry does not expire.
func (c *Cache) Set(ctx context.Context, key, html string, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}
	if err := c.client.Set(ctx, c.key(key), html, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Ping checks the connection.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

// Close closes the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}
