// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"fmt"

	"github.com/taibuivan/douren/internal/platform/constants"
	"github.com/taibuivan/douren/pkg/sqlq"
)

// BuildArtistQuery composes the artist listing for params.
//
// Rows are one per artist with their tags aggregated; artists with an empty
// display name are never listed.
func BuildArtistQuery(params Params) QueryPair {
	resolved := params.Resolve(ArtistColumns)
	artistID := authorTbl.Field(authorTbl.UUID)
	scope := sqlq.Neq(authorTbl.Field(authorTbl.Author), "")

	base := withTagJoins(sqlq.From(authorTbl.From()))

	rows := base.
		Columns(append(qualified(authorTbl.Field, authorTbl.Listed()), tagsProjection)...).
		GroupBy(artistID).
		OrderBy(resolved.Direction, resolved.OrderColumn).
		TieBreak(artistID).
		Paginate(params.Page, constants.ListingPageSize)

	count := base.Columns(fmt.Sprintf("count(DISTINCT %s)", artistID))

	return newQueryPair(rows, count, listingFilters(scope, params, resolved))
}
