// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/douren/internal/api"
	"github.com/taibuivan/douren/internal/core/catalog"
	"github.com/taibuivan/douren/internal/core/listing"
	"github.com/taibuivan/douren/internal/platform/config"
	"github.com/taibuivan/douren/internal/platform/middleware"
	"github.com/taibuivan/douren/internal/platform/sec"
)

type emptyStore struct{}

func (emptyStore) FetchArtists(context.Context, listing.QueryPair) ([]listing.Artist, int, error) {
	return nil, 0, nil
}

func (emptyStore) FetchEventArtists(context.Context, listing.QueryPair) ([]listing.EventArtist, int, error) {
	return nil, 0, nil
}

type emptyCatalog struct{}

func (emptyCatalog) ListTags(context.Context) ([]catalog.Tag, error)     { return nil, nil }
func (emptyCatalog) ListEvents(context.Context) ([]catalog.Event, error) { return nil, nil }
func (emptyCatalog) GetEventByID(context.Context, int64) (*catalog.Event, error) {
	return &catalog.Event{ID: 1, Name: "FF42"}, nil
}
func (emptyCatalog) GetEventByName(context.Context, string) (*catalog.Event, error) {
	return &catalog.Event{ID: 1, Name: "FF42"}, nil
}

// roleVerifier accepts any token and uses it as the role.
type roleVerifier struct{}

func (roleVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token == "bad" {
		return nil, errors.New("invalid")
	}
	return &sec.AuthClaims{UserID: "u1", Role: token}, nil
}

func newTestServer(t *testing.T, verifier middleware.TokenVerifier, deps api.HealthDependencies) http.Handler {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	liveness, readiness := api.NewHealthHandlers(deps, logger)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Listing:   listing.NewHandler(listing.NewService(emptyStore{}, nil, logger, listing.Options{})),
		Catalog:   catalog.NewHandler(catalog.NewService(emptyCatalog{}, logger)),
	}

	cfg := &config.Config{ServerPort: "0", Environment: "development"}
	return api.NewServer(ctx, cfg, logger, verifier, handlers).Handler()
}

func do(handler http.Handler, method, target, token string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, nil)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestServer_PublicRoutes mounts listings and catalog under /api/v1.
*/
func TestServer_PublicRoutes(t *testing.T) {
	handler := newTestServer(t, nil, api.HealthDependencies{})

	for _, target := range []string{
		"/api/v1/artists",
		"/api/v1/events/1/artists",
		"/api/v1/events/FF42/artists",
		"/api/v1/tags",
		"/api/v1/events",
		"/api/v1/events/FF42",
		"/health",
	} {
		recorder := do(handler, http.MethodGet, target, "")
		assert.Equal(t, http.StatusOK, recorder.Code, target)
		assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"), target)
	}
}

/*
TestServer_AdminRoutes requires a curator token for cache purges.
*/
func TestServer_AdminRoutes(t *testing.T) {
	handler := newTestServer(t, roleVerifier{}, api.HealthDependencies{})

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"invalid_token", "bad", http.StatusUnauthorized},
		{"viewer", string(sec.RoleViewer), http.StatusForbidden},
		{"curator", string(sec.RoleCurator), http.StatusOK},
		{"admin", string(sec.RoleAdmin), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := do(handler, http.MethodDelete, "/api/v1/admin/cache?prefix=artist", tt.token)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

/*
TestServer_AdminDisabled leaves admin routes unmounted without a verifier.
*/
func TestServer_AdminDisabled(t *testing.T) {
	handler := newTestServer(t, nil, api.HealthDependencies{})

	recorder := do(handler, http.MethodDelete, "/api/v1/admin/cache", string(sec.RoleAdmin))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

/*
TestServer_Readiness reports each dependency and degrades on failure.
*/
func TestServer_Readiness(t *testing.T) {
	healthy := func(context.Context) error { return nil }
	failing := func(context.Context) error { return errors.New("dial tcp: connection refused") }

	tests := []struct {
		name       string
		deps       api.HealthDependencies
		wantStatus int
		wantBody   string
	}{
		{
			"ready",
			api.HealthDependencies{CheckDatabase: healthy, CheckCache: healthy},
			http.StatusOK,
			`{"data":{"status":"ready","checks":[{"name":"postgres","ok":true},{"name":"redis","ok":true}]}}`,
		},
		{
			"cache_down",
			api.HealthDependencies{CheckDatabase: healthy, CheckCache: failing},
			http.StatusServiceUnavailable,
			`{"data":{"status":"degraded","checks":[{"name":"postgres","ok":true},{"name":"redis","ok":false,"error":"dial tcp: connection refused"}]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestServer(t, nil, tt.deps)

			recorder := do(handler, http.MethodGet, "/ready", "")
			require.Equal(t, tt.wantStatus, recorder.Code)
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
		})
	}
}

/*
TestServer_Shutdown stops a server that was never started.
*/
func TestServer_Shutdown(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{ServerPort: "0"}

	server := api.NewServer(context.Background(), cfg, logger, nil, api.Handlers{
		Listing: listing.NewHandler(listing.NewService(emptyStore{}, nil, logger, listing.Options{})),
		Catalog: catalog.NewHandler(catalog.NewService(emptyCatalog{}, logger)),
	})
	assert.NoError(t, server.Shutdown(time.Second))
}
