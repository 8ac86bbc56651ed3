// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"net/url"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/taibuivan/douren/internal/platform/constants"
	"github.com/taibuivan/douren/pkg/normalize"
	"github.com/taibuivan/douren/pkg/pagination"
	"github.com/taibuivan/douren/pkg/query"
	"github.com/taibuivan/douren/pkg/sqlq"
)

// Scope narrows an event-artist listing to one event, by ID or by name.
type Scope struct {
	EventID   *int64
	EventName string
}

// IsZero reports whether no event was selected.
func (s Scope) IsZero() bool {
	return s.EventID == nil && s.EventName == ""
}

// key renders the scope for the cache key. IDs are bare digits and names carry
// a leading '=' so the two can never produce the same segment.
func (s Scope) key() string {
	if s.EventID != nil {
		return strconv.FormatInt(*s.EventID, 10)
	}
	return "=" + escapeKeySegment(s.EventName)
}

// Params is one listing request, parsed once from the query string.
//
// Params is a value: it is never modified after [ParseParams] and every field
// that can change the result participates in [Params.CacheKey].
type Params struct {
	Page         int
	Search       string
	Tag          string
	Sort         string
	SearchColumn string
	Scope        Scope
}

// ParseParams reads listing parameters from a query string.
//
// Malformed pages become 1. Search and tag values are trimmed and NFC-normalized
// so visually identical input filters the same and shares a cache entry. The
// search column is accepted as searchColumn, searchTable, or searchtable.
func ParseParams(values url.Values) Params {
	return Params{
		Page:         pagination.ParsePage(values.Get("page")),
		Search:       normalize.Term(values.Get("search")),
		Tag:          normalize.List(values.Get("tag")),
		Sort:         strings.TrimSpace(values.Get("sort")),
		SearchColumn: strings.TrimSpace(query.FirstOf(values.Get, "searchColumn", "searchTable", "searchtable")),
	}
}

// WithEvent returns a copy of p scoped to one event.
func (p Params) WithEvent(id *int64, name string) Params {
	p.Scope = Scope{EventID: id, EventName: strings.TrimSpace(name)}
	return p
}

// CacheKey returns the result-cache key of an artist listing.
func (p Params) CacheKey() string {
	return constants.RedisPrefixArtistListing + p.keySegments()
}

// EventCacheKey returns the result-cache key of an event-artist listing.
func (p Params) EventCacheKey() string {
	return constants.RedisPrefixEventArtistListing + p.Scope.key() + "_" + p.keySegments()
}

// keySegments joins page, search, tag, sort and search column in that fixed order.
func (p Params) keySegments() string {
	segments := []string{
		strconv.Itoa(p.Page),
		escapeKeySegment(p.Search),
		escapeKeySegment(p.Tag),
		escapeKeySegment(p.Sort),
		escapeKeySegment(p.SearchColumn),
	}
	return strings.Join(segments, "_")
}

var keyEscaper = strings.NewReplacer(`\`, `\\`, `_`, `\_`)

// escapeKeySegment escapes the '_' separator so that ("a_b", "c") and ("a", "b_c")
// never join to the same key.
func escapeKeySegment(s string) string {
	return keyEscaper.Replace(s)
}

// Resolved is the parameters' SQL-facing form. It is derived deterministically
// and never mutated.
type Resolved struct {
	OrderColumn   sqlq.Column
	Direction     sqlq.Direction
	SearchColumn  sqlq.Column
	TagPredicates []sq.Sqlizer
}

// Resolve maps p onto SQL columns using the given allow-list.
//
// The sort value is "column,direction"; only "asc" sorts ascending and a missing
// or unknown column sorts by the author name.
func (p Params) Resolve(columns ColumnSet) Resolved {
	sortColumn, direction, _ := strings.Cut(p.Sort, ",")

	return Resolved{
		OrderColumn:   columns.Resolve(strings.TrimSpace(sortColumn)),
		Direction:     sqlq.ParseDirection(direction),
		SearchColumn:  columns.Resolve(p.SearchColumn),
		TagPredicates: TagConditions(p.Tag),
	}
}
