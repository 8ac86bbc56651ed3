// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/taibuivan/douren/internal/platform/database/schema"
	"github.com/taibuivan/douren/pkg/sqlq"
)

// QueryPair is the row query of one listing page and the count query of the
// whole result set. Both share the same joins and the same Filters; only the
// count omits ordering, grouping, and pagination.
type QueryPair struct {
	Select  sqlq.Select
	Count   sqlq.Select
	Filters []sq.Sqlizer
}

// newQueryPair ANDs one filter list into both halves, which is what keeps the
// reported total consistent with the returned rows.
func newQueryPair(rows, count sqlq.Select, filters []sq.Sqlizer) QueryPair {
	return QueryPair{
		Select:  rows.And(filters...),
		Count:   count.And(filters...),
		Filters: filters,
	}
}

var (
	authorTbl    = schema.AuthorMain
	authorTagTbl = schema.AuthorTag
	tagTbl       = schema.Tag
	eventTbl     = schema.Event
	boothTbl     = schema.EventDM
)

// tagsProjection aggregates an artist's joined tag rows into a JSON array of
// {tagName, tagCount}, ordered by the directory's tag ranking. Artists without
// tags get [] instead of [null].
var tagsProjection = fmt.Sprintf(
	`COALESCE(jsonb_agg(jsonb_build_object('tagName', %[1]s, 'tagCount', %[2]s) ORDER BY %[3]s) `+
		`FILTER (WHERE %[1]s IS NOT NULL), '[]'::jsonb) AS tags`,
	tagTbl.Field(tagTbl.Tag), tagTbl.Field(tagTbl.Count), tagTbl.Field(tagTbl.Index),
)

// withTagJoins appends author -> author_tag -> tag.
func withTagJoins(query sqlq.Select) sqlq.Select {
	return query.
		LeftJoin(authorTagTbl.From(), fmt.Sprintf("%s = %s", authorTagTbl.Field(authorTagTbl.AuthorID), authorTbl.Field(authorTbl.UUID))).
		LeftJoin(tagTbl.From(), fmt.Sprintf("%s = %s", tagTbl.Field(tagTbl.Tag), authorTagTbl.Field(authorTagTbl.TagName)))
}

// qualified prefixes every column of table with its alias.
func qualified(field func(string) sqlq.Column, columns []string) []string {
	out := make([]string, len(columns))
	for i, column := range columns {
		out[i] = string(field(column))
	}
	return out
}

// listingFilters returns the scope, then every tag, then the search term.
func listingFilters(scope sq.Sqlizer, params Params, resolved Resolved) []sq.Sqlizer {
	filters := make([]sq.Sqlizer, 0, len(resolved.TagPredicates)+2)
	filters = append(filters, scope)
	filters = append(filters, resolved.TagPredicates...)
	if params.Search != "" {
		filters = append(filters, sqlq.ILike(resolved.SearchColumn, params.Search))
	}
	return filters
}
