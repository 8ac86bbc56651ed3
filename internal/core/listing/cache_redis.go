// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// purgeBatch is the SCAN page size and the number of keys per DEL.
const purgeBatch = 500

// RedisCache keeps envelopes as plain JSON strings with SET EX.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (cache *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := cache.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("listing cache: get %q: %w", key, err)
	}
	return value, true, nil
}

func (cache *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := cache.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("listing cache: set %q: %w", key, err)
	}
	return nil
}

// Purge walks the keyspace with SCAN so a large cache never blocks Redis the way KEYS would.
func (cache *RedisCache) Purge(ctx context.Context, prefix string) (int, error) {
	var (
		cursor  uint64
		deleted int
	)

	pattern := globEscaper.Replace(prefix) + "*"

	for {
		keys, next, err := cache.client.Scan(ctx, cursor, pattern, purgeBatch).Result()
		if err != nil {
			return deleted, fmt.Errorf("listing cache: scan %q: %w", pattern, err)
		}

		if len(keys) > 0 {
			n, err := cache.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("listing cache: delete: %w", err)
			}
			deleted += int(n)
		}

		if next == 0 {
			return deleted, nil
		}
		cursor = next
	}
}

var globEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)
