package tool

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/smallnest/langgraphgo/log"
	"github.com/tmc/langchaingo/tools"
)

// CachedTool wraps another tool and memoizes its results in Redis. The
// wrapped tool is only called on a cache miss; a Redis outage degrades to
// calling through.
type CachedTool struct {
	inner  tools.Tool
	client *redis.Client
	prefix string
	ttl    time.Duration
}

var _ tools.Tool = (*CachedTool)(nil)

// Cached wraps tool with a Redis result cache with the given TTL.
func Cached(inner tools.Tool, client *redis.Client, ttl time.Duration) *CachedTool {
	return &CachedTool{
		inner:  inner,
		client: client,
		prefix: "geoagents:tool:",
		ttl:    ttl,
	}
}

// Name returns the name of the wrapped tool.
func (c *CachedTool) Name() string {
	return c.inner.Name()
}

// Description returns the description of the wrapped tool.
func (c *CachedTool) Description() string {
	return c.inner.Description()
}

func (c *CachedTool) key(input string) string {
	sum := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%s%s:%s", c.prefix, c.inner.Name(), hex.EncodeToString(sum[:]))
}

// Call returns the cached result for the input, or calls the wrapped tool
// and stores its result. Only successful results are cached.
func (c *CachedTool) Call(ctx context.Context, input string) (string, error) {
	key := c.key(input)

	cached, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil:
		return cached, nil
	case !errors.Is(err, redis.Nil):
		log.Warn("tool cache read failed, calling through: %v", err)
	}

	result, err := c.inner.Call(ctx, input)
	if err != nil {
		return "", err
	}

	if err := c.client.Set(ctx, key, result, c.ttl).Err(); err != nil {
		log.Warn("tool cache write failed: %v", err)
	}
	return result, nil
}
