// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/taibuivan/douren/internal/platform/constants"
	"github.com/taibuivan/douren/pkg/sqlq"
)

// BuildEventArtistQuery composes the booth listing of one event.
//
// Rows are one per booth (an artist with two booths appears twice), so both
// grouping and counting use the booth's own key.
func BuildEventArtistQuery(params Params) QueryPair {
	resolved := params.Resolve(EventArtistColumns)
	boothID := boothTbl.Field(boothTbl.UUID)
	scope := eventScope(params.Scope)

	base := withTagJoins(
		sqlq.From(boothTbl.From()).
			LeftJoin(authorTbl.From(), fmt.Sprintf("%s = %s", authorTbl.Field(authorTbl.UUID), boothTbl.Field(boothTbl.ArtistID))),
	).LeftJoin(eventTbl.From(), fmt.Sprintf("%s = %s", eventTbl.Field(eventTbl.ID), boothTbl.Field(boothTbl.EventID)))

	columns := qualified(authorTbl.Field, authorTbl.Listed())
	columns = append(columns, tagsProjection)
	columns = append(columns, qualified(boothTbl.Field, boothTbl.Listed())...)

	rows := base.
		Columns(columns...).
		GroupBy(boothID, authorTbl.Field(authorTbl.UUID)).
		OrderBy(resolved.Direction, resolved.OrderColumn).
		TieBreak(boothID).
		Paginate(params.Page, constants.ListingPageSize)

	count := base.Columns(fmt.Sprintf("count(DISTINCT %s)", boothID))

	return newQueryPair(rows, count, listingFilters(scope, params, resolved))
}

// eventScope filters by event ID when one was given, otherwise by event name.
func eventScope(scope Scope) sq.Sqlizer {
	if scope.EventID != nil {
		return sqlq.Eq(boothTbl.Field(boothTbl.EventID), *scope.EventID)
	}
	return sqlq.Eq(eventTbl.Field(eventTbl.Name), scope.EventName)
}
