// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"context"
	"time"
)

// Cache stores serialized listing envelopes.
//
// A miss is (nil, false, nil). Errors are reported so the caller can log them,
// but the service never fails a request because of the cache.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Purge deletes every key starting with prefix and returns how many were removed.
	Purge(ctx context.Context, prefix string) (int, error)
}
