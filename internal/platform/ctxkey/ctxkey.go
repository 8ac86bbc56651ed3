// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines the typed context keys behind [ctxutil].
//
// Three values travel with a directory request: the X-Request-ID correlation
// value, the request-scoped logger that tags every listing log line with it,
// and the curator claims checked by the cache purge route. Keys use an
// unexported type so other packages storing values in the same context cannot
// collide with them.
package ctxkey

// key is an unexported type used for context keys to ensure type safety.
//
// # Collision Prevention
//
// Even if another package uses "request_id" as a string key, it will not
// collide with this key type because Go's [context.Context] uses both the
// value AND the type for lookups.
type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyUser is the context key for the authenticated curator claim ([sec.AuthClaims]).
	KeyUser key = "curator"

	// KeyLogger is the context key for the per-request [*log/slog.Logger]
	// that already carries request_id, method, path and ip.
	KeyLogger key = "request_logger"
)
