// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction so handlers do
not import chi directly for simple lookups.
*/
package requestutil

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/douren/internal/platform/apperr"
	"github.com/taibuivan/douren/internal/platform/ctxutil"
	"github.com/taibuivan/douren/internal/platform/sec"
)

/*
Param retrieves a named URL parameter from the request, trimmed.
*/
func Param(request *http.Request, name string) string {
	return strings.TrimSpace(chi.URLParam(request, name))
}

/*
Ref splits a path reference that may be either a numeric ID or a name.

Returns:
  - id: The parsed ID when the reference is all digits
  - name: The raw reference otherwise
*/
func Ref(request *http.Request, name string) (id *int64, refName string) {
	raw := Param(request, name)
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
		return &n, ""
	}
	return nil, raw
}

/*
Claims extracts the authenticated user claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the user claims.

Returns:
  - *sec.AuthClaims: The authenticated user claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}
