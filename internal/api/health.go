// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package api contains the health check handlers for liveness and readiness checks.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/douren/internal/platform/constants"
	"github.com/taibuivan/douren/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func(ctx context.Context) error

	// CheckCache pings the listing cache. A failing cache degrades readiness even
	// though listings keep being served from the database.
	CheckCache func(ctx context.Context) error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health (Liveness check).
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{constants.FieldStatus: "ok"})
}

// readiness handles GET /ready (Readiness check).
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()

	results := make([]checkResult, 0, 2)
	results = handler.check(ctx, results, "postgres", handler.dependencies.CheckDatabase)
	results = handler.check(ctx, results, "redis", handler.dependencies.CheckCache)

	status, httpStatus := "ready", http.StatusOK
	for _, result := range results {
		if !result.IsOK {
			status, httpStatus = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	respond.JSON(writer, httpStatus, respond.SuccessEnvelope{Data: map[string]any{
		constants.FieldStatus: status,
		constants.FieldChecks: results,
	}})
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// check runs one dependency ping. A nil ping is skipped.
func (handler *healthHandler) check(ctx context.Context, results []checkResult, name string, ping func(context.Context) error) []checkResult {
	if ping == nil {
		return results
	}

	result := checkResult{Name: name, IsOK: true}
	if err := ping(ctx); err != nil {
		result.IsOK = false
		result.Error = err.Error()
		handler.logger.ErrorContext(ctx, "readiness_check_failed", slog.String("dependency", name), slog.Any("error", err))
	}
	return append(results, result)
}
