package llm

import (
	"context"
	"strconv"
	"time"

	"advisorpilot/internal/shared/telemetry"
	"advisorpilot/internal/shared/util"
)

// Cache stores raw completions.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// CachedClient memoises completions keyed by a hash of the full request.
// Cache failures are logged and the provider is called directly.
type CachedClient struct {
	next  Client
	cache Cache
	ttl   time.Duration
	log   telemetry.Logger
}

// NewCachedClient wraps next. A nil logger discards cache warnings.
func NewCachedClient(next Client, cache Cache, ttl time.Duration, log telemetry.Logger) *CachedClient {
	if log == nil {
		log = telemetry.NewNoOpLogger()
	}
	return &CachedClient{next: next, cache: cache, ttl: ttl, log: log}
}

// Complete serves from cache when possible.
func (c *CachedClient) Complete(ctx context.Context, req Request) (string, error) {
	key := CacheKey(req)
	if val, ok, err := c.cache.Get(ctx, key); err != nil {
		c.log.Warn("llm cache read failed", map[string]any{"prompt": req.Name, "err": err})
	} else if ok {
		return val, nil
	}

	out, err := c.next.Complete(ctx, req)
	if err != nil {
		return "", err
	}
	if err := c.cache.Set(ctx, key, out, c.ttl); err != nil {
		c.log.Warn("llm cache write failed", map[string]any{"prompt": req.Name, "err": err})
	}
	return out, nil
}

// CacheKey identifies a request by everything that influences the completion.
func CacheKey(req Request) string {
	return "llm:" + util.HashKey(
		req.System,
		req.Prompt,
		strconv.FormatFloat(float64(req.Temperature), 'f', -1, 32),
		strconv.Itoa(req.MaxTokens),
		strconv.FormatBool(req.JSON),
	)
}
