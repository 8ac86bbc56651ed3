// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/taibuivan/douren/internal/platform/apperr"
	"github.com/taibuivan/douren/internal/platform/constants"
	"github.com/taibuivan/douren/internal/platform/ctxutil"
	"github.com/taibuivan/douren/internal/platform/validate"
	"github.com/taibuivan/douren/pkg/pagination"
)

// Options tunes the read path.
type Options struct {
	// CoalesceMisses makes concurrent misses on the same key share one query.
	// When false, identical requests racing past an empty cache each run their
	// own queries (the usual cache-stampede exposure).
	CoalesceMisses bool

	// TTL overrides [constants.ListingCacheTTL] when non-zero.
	TTL time.Duration
}

// Purge targets accepted by [Service.PurgeCache].
const (
	PurgeArtists = "artist"
	PurgeEvents  = "event"
	PurgeAll     = "all"
)

type Service struct {
	store   Store
	cache   Cache
	logger  *slog.Logger
	options Options
	flight  singleflight.Group
}

// NewService wires the read path. A nil cache disables caching entirely.
func NewService(store Store, cache Cache, logger *slog.Logger, options Options) *Service {
	if options.TTL <= 0 {
		options.TTL = constants.ListingCacheTTL
	}
	return &Service{
		store:   store,
		cache:   cache,
		logger:  logger,
		options: options,
	}
}

// ListArtists returns one page of the artist directory.
func (service *Service) ListArtists(ctx context.Context, params Params) (pagination.Envelope[Artist], error) {
	return readThrough(ctx, service, params.CacheKey(), func(ctx context.Context) (pagination.Envelope[Artist], error) {
		rows, total, err := service.store.FetchArtists(ctx, BuildArtistQuery(params))
		if err != nil {
			return pagination.Envelope[Artist]{}, err
		}
		return pagination.NewEnvelope(rows, params.Page, constants.ListingPageSize, total), nil
	})
}

// ListEventArtists returns one page of the booths of the event in params.Scope.
func (service *Service) ListEventArtists(ctx context.Context, params Params) (pagination.Envelope[EventArtist], error) {
	if params.Scope.IsZero() {
		return pagination.Envelope[EventArtist]{}, (&validate.Validator{}).
			Required("eventRef", "").
			Err()
	}

	return readThrough(ctx, service, params.EventCacheKey(), func(ctx context.Context) (pagination.Envelope[EventArtist], error) {
		rows, total, err := service.store.FetchEventArtists(ctx, BuildEventArtistQuery(params))
		if err != nil {
			return pagination.Envelope[EventArtist]{}, err
		}
		return pagination.NewEnvelope(rows, params.Page, constants.ListingPageSize, total), nil
	})
}

// PurgeCache drops cached pages for target ("artist", "event" or "all").
//
// Mutations elsewhere never invalidate listings; entries otherwise live for the
// full TTL, and this is the explicit way to publish an edit sooner.
func (service *Service) PurgeCache(ctx context.Context, target string) (int, error) {
	if err := (&validate.Validator{}).OneOf("prefix", target, PurgeArtists, PurgeEvents, PurgeAll).Err(); err != nil {
		return 0, err
	}
	if service.cache == nil {
		return 0, nil
	}

	var prefixes []string
	switch target {
	case PurgeArtists:
		prefixes = []string{constants.RedisPrefixArtistListing}
	case PurgeEvents:
		prefixes = []string{constants.RedisPrefixEventArtistListing}
	default:
		prefixes = []string{constants.RedisPrefixArtistListing, constants.RedisPrefixEventArtistListing}
	}

	deleted := 0
	for _, prefix := range prefixes {
		n, err := service.cache.Purge(ctx, prefix)
		deleted += n
		if err != nil {
			return deleted, apperr.ServiceUnavailable("Listing cache is unavailable")
		}
	}

	service.log(ctx).InfoContext(ctx, "listing_cache_purged",
		slog.String("target", target),
		slog.Int("deleted", deleted),
	)
	return deleted, nil
}

// log returns the request logger when ctx carries one.
func (service *Service) log(ctx context.Context) *slog.Logger {
	return ctxutil.LoggerOr(ctx, service.logger)
}

// readThrough serves key from the cache or computes, stores, and returns it.
func readThrough[T any](ctx context.Context, service *Service, key string, compute func(context.Context) (T, error)) (T, error) {
	if cached, ok := lookup[T](ctx, service, key); ok {
		return cached, nil
	}

	load := func(ctx context.Context) (T, error) {
		value, err := compute(ctx)
		if err != nil {
			return value, err
		}
		save(ctx, service, key, value)
		return value, nil
	}

	if !service.options.CoalesceMisses {
		return load(ctx)
	}

	// The shared load outlives whichever caller started it, bounded by the
	// request timeout. Each caller still stops waiting when its own ctx ends.
	results := service.flight.DoChan(key, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), constants.GlobalRequestTimeout)
		defer cancel()
		return load(loadCtx)
	})

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case result := <-results:
		if result.Err != nil {
			var zero T
			return zero, result.Err
		}
		return result.Val.(T), nil
	}
}

// lookup treats every cache problem as a miss.
func lookup[T any](ctx context.Context, service *Service, key string) (T, bool) {
	var value T
	if service.cache == nil {
		return value, false
	}

	raw, found, err := service.cache.Get(ctx, key)
	if err != nil {
		service.log(ctx).WarnContext(ctx, "listing_cache_read_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
		return value, false
	}
	if !found {
		service.log(ctx).DebugContext(ctx, "listing_cache_miss", slog.String("key", key))
		return value, false
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		service.log(ctx).WarnContext(ctx, "listing_cache_entry_corrupt",
			slog.String("key", key),
			slog.Any("error", err),
		)
		var zero T
		return zero, false
	}

	service.log(ctx).DebugContext(ctx, "listing_cache_hit", slog.String("key", key))
	return value, true
}

// save writes value under key. A failed write only costs the next request a query.
func save[T any](ctx context.Context, service *Service, key string, value T) {
	if service.cache == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err == nil {
		err = service.cache.Set(ctx, key, raw, service.options.TTL)
	}
	if err != nil {
		service.log(ctx).WarnContext(ctx, "listing_cache_write_failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
