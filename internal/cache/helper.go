package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"retrolog/internal/observability"

	"github.com/redis/go-redis/v9"
)

const (
	postKeyPrefix = "post:%d"
	// PostsListKey caches the full GET /posts payload.
	PostsListKey = "posts:list"
)

const (
	PostTTL      = 30 * time.Minute
	PostsListTTL = 5 * time.Minute
)

// PostKey returns the cache key for a single post document.
func PostKey(postID int64) string {
	return fmt.Sprintf(postKeyPrefix, postID)
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	s, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		observability.RecordCacheError("get")
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		observability.RecordCacheError("decode")
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := client.Set(ctx, key, b, ttl).Err(); err != nil {
		observability.RecordCacheError("set")
		return err
	}
	return nil
}

// Aside tries Redis first, on miss it calls fetch (which should populate
// dest), then stores the result with ttl. fetch must write into dest.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := GetJSON(ctx, key, dest)
	if err == nil && found {
		observability.RecordCacheHit()
		return nil
	}
	if client != nil {
		observability.RecordCacheMiss()
	}

	// Fetch from source (DB)
	if err := fetch(); err != nil {
		return err
	}

	// Store into cache (best-effort)
	_ = SetJSON(ctx, key, dest, ttl)
	return nil
}

// Invalidate removes a key from the cache.
func Invalidate(ctx context.Context, key string) {
	if client == nil {
		return
	}
	if err := client.Del(ctx, key).Err(); err != nil {
		observability.RecordCacheError("del")
	}
}

// InvalidatePost drops the cached document for a single post.
func InvalidatePost(ctx context.Context, postID int64) {
	Invalidate(ctx, PostKey(postID))
}

// InvalidatePostsList drops the cached posts listing.
func InvalidatePostsList(ctx context.Context) {
	Invalidate(ctx, PostsListKey)
}
