package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/8ubble8uddy/yatube-project/internal/config"
	"github.com/8ubble8uddy/yatube-project/internal/ports/feedcache"
)

const keyPrefix = "feed:"

// FeedCacheRedis caches rendered feed pages verbatim for a fixed TTL. Nothing
// invalidates an entry except expiry or an explicit Clear, so a freshly
// created post may not show up in a cached page until then.
type FeedCacheRedis struct {
	Client *redis.Client
}

func NewFeedCacheRedis(client *redis.Client) *FeedCacheRedis {
	return &FeedCacheRedis{Client: client}
}

func (r *FeedCacheRedis) GetOrRender(ctx context.Context, key string, ttl time.Duration, render feedcache.RenderFunc) (string, bool, error) {
	fullKey := keyPrefix + key

	body, err := r.Client.Get(ctx, fullKey).Result()
	if err == nil {
		return body, true, nil
	}
	if err != redis.Nil {
		config.Logger.Warn("Cache read failed, rendering uncached", zap.String("key", fullKey), zap.Error(err))
	}

	body, err = render()
	if err != nil {
		return "", false, err
	}

	if err := r.Client.Set(ctx, fullKey, body, ttl).Err(); err != nil {
		config.Logger.Warn("Cache write failed", zap.String("key", fullKey), zap.Error(err))
	}
	return body, false, nil
}

// Clear drops every cached feed page.
func (r *FeedCacheRedis) Clear(ctx context.Context) error {
	iter := r.Client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return r.Client.Del(ctx, keys...).Err()
}
