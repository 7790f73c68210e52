// Package cache holds the sinks for "listing is stale" signals and the redis
// copy of the admin booking listing.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "listing:"
	versionPrefix = "listing-version:"
)

type RedisConfig struct {
	Addr     string
	Username string
	Password string
	DB       int
}

// Connect opens a redis client and pings it once.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// ListingCache stores rendered listings as JSON under "listing:<path>".
type ListingCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewListingCache(rdb *redis.Client, ttl time.Duration) *ListingCache {
	return &ListingCache{rdb: rdb, ttl: ttl}
}

func Key(path string) string {
	return keyPrefix + path
}

// VersionKey holds a counter bumped by every Invalidate of path.
func VersionKey(path string) string {
	return versionPrefix + path
}

// Get decodes the cached listing into dst. A miss is (false, nil).
func (c *ListingCache) Get(ctx context.Context, path string, dst any) (bool, error) {
	raw, err := c.rdb.Get(ctx, Key(path)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", path, err)
	}
	return true, nil
}

func (c *ListingCache) Set(ctx context.Context, path string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", path, err)
	}
	if err := c.rdb.Set(ctx, Key(path), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %s: %w", path, err)
	}
	return nil
}

// Version returns the invalidation counter for path, 0 if never invalidated.
// Read it before loading a listing and pass it to SetIfVersion.
func (c *ListingCache) Version(ctx context.Context, path string) (int64, error) {
	v, err := c.rdb.Get(ctx, VersionKey(path)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cache version %s: %w", path, err)
	}
	return v, nil
}

// SetIfVersion stores value only if path was not invalidated after version
// was read. It reports whether the value was stored.
func (c *ListingCache) SetIfVersion(ctx context.Context, path string, value any, version int64) (bool, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return false, fmt.Errorf("cache encode %s: %w", path, err)
	}

	stored := false
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, VersionKey(path)).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, Key(path), raw, c.ttl)
			return nil
		})
		if err == nil {
			stored = true
		}
		return err
	}, VersionKey(path))
	if errors.Is(err, redis.TxFailedErr) {
		// Invalidated while we were writing.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache set %s: %w", path, err)
	}
	return stored, nil
}

// Invalidate drops the cached listing for path and bumps its version.
func (c *ListingCache) Invalidate(ctx context.Context, path string) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, VersionKey(path))
		pipe.Del(ctx, Key(path))
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache invalidate %s: %w", path, err)
	}
	return nil
}
