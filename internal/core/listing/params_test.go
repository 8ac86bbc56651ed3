// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/douren/internal/core/listing"
	"github.com/taibuivan/douren/pkg/sqlq"
)

/*
TestParseParams covers defaults, normalization, and parameter spellings.
*/
func TestParseParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  listing.Params
	}{
		{
			"empty",
			"",
			listing.Params{Page: 1},
		},
		{
			"full",
			"page=3&search=+Mio+&tag=%E5%8E%9F%E5%89%B5+,%E6%B8%AC%E8%A9%A6&sort=Author_Main(Author),asc&searchTable=Author_Main.Author",
			listing.Params{Page: 3, Search: "Mio", Tag: "原創,測試", Sort: "Author_Main(Author),asc", SearchColumn: "Author_Main.Author"},
		},
		{
			"bad_page",
			"page=-2",
			listing.Params{Page: 1},
		},
		{
			"lowercase_searchtable",
			"searchtable=Booth_name",
			listing.Params{Page: 1, SearchColumn: "Booth_name"},
		},
		{
			"searchColumn_wins",
			"searchColumn=Location_Day01&searchTable=Booth_name",
			listing.Params{Page: 1, SearchColumn: "Location_Day01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, listing.ParseParams(values))
		})
	}
}

/*
TestParams_Resolve maps sort and search names through the allow-list.
*/
func TestParams_Resolve(t *testing.T) {
	params := listing.Params{Page: 1, Sort: "Booth_name,asc", SearchColumn: "Location_Day02", Tag: "原創, ,測試"}

	event := params.Resolve(listing.EventArtistColumns)
	assert.Equal(t, sqlq.Column(`d."Booth_name"`), event.OrderColumn)
	assert.Equal(t, sqlq.Asc, event.Direction)
	assert.Equal(t, sqlq.Column(`d."Location_Day02"`), event.SearchColumn)
	assert.Len(t, event.TagPredicates, 2)

	artist := params.Resolve(listing.ArtistColumns)
	assert.Equal(t, listing.DefaultColumn, artist.OrderColumn)
	assert.Equal(t, listing.DefaultColumn, artist.SearchColumn)

	unsorted := listing.Params{Page: 1}.Resolve(listing.ArtistColumns)
	assert.Equal(t, listing.DefaultColumn, unsorted.OrderColumn)
	assert.Equal(t, sqlq.Desc, unsorted.Direction)
	assert.Empty(t, unsorted.TagPredicates)
}

/*
TestParams_CacheKey pins the key format and its collision behavior.
*/
func TestParams_CacheKey(t *testing.T) {
	base := listing.Params{Page: 1, Sort: "Author_Main(Author),asc", SearchColumn: "Author_Main(Author)"}

	assert.Equal(t, `get_artist_1___Author\_Main(Author),asc_Author\_Main(Author)`, base.CacheKey())

	same := base
	assert.Equal(t, base.CacheKey(), same.CacheKey())

	withTag := base
	withTag.Tag = "原創"
	assert.NotEqual(t, base.CacheKey(), withTag.CacheKey())

	nextPage := base
	nextPage.Page = 2
	assert.NotEqual(t, base.CacheKey(), nextPage.CacheKey())

	// Underscores inside values cannot shift segment boundaries
	left := listing.Params{Page: 1, Search: "a_b", Tag: "c"}
	right := listing.Params{Page: 1, Search: "a", Tag: "b_c"}
	assert.NotEqual(t, left.CacheKey(), right.CacheKey())
}

/*
TestParams_EventCacheKey includes the event reference in the key.
*/
func TestParams_EventCacheKey(t *testing.T) {
	base := listing.Params{Page: 1}

	byID := base.WithEvent(eventID(7), "")
	byOtherID := base.WithEvent(eventID(8), "")
	byName := base.WithEvent(nil, "FF42")
	byNumericName := base.WithEvent(nil, "7")

	assert.Equal(t, "get_eventArtist7_1____", byID.EventCacheKey())
	assert.Equal(t, "get_eventArtist=FF42_1____", byName.EventCacheKey())
	assert.NotEqual(t, byID.EventCacheKey(), byOtherID.EventCacheKey())
	assert.NotEqual(t, byID.EventCacheKey(), byNumericName.EventCacheKey())
	assert.NotEqual(t, byID.EventCacheKey(), byID.CacheKey())
}
