// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package listing serves the paginated artist and event-artist listings.
//
// # Flow
//
// A request's query string becomes immutable [Params]. The service looks the
// params' cache key up in the result cache; on a miss it builds a [QueryPair]
// (rows + count sharing one filter set), runs both queries concurrently, wraps
// the rows into a [pagination.Envelope], and writes the envelope back to the cache.
//
// # Consistency
//
// Every filter that narrows the row query narrows the count query too. The
// query builders compute the filter list once and apply it to both halves, so
// totalCount, totalPage and nextPageAvailable always describe the rows returned.
package listing

// Tag is one tag attached to an artist, with its directory-wide usage count.
type Tag struct {
	TagName  string `json:"tagName"`
	TagCount *int64 `json:"tagCount"`
}

// Artist is one row of the artist listing.
type Artist struct {
	UUID          int64   `json:"uuid"`
	Author        string  `json:"author"`
	Introduction  *string `json:"introduction"`
	TwitterLink   *string `json:"twitterLink"`
	YoutubeLink   *string `json:"youtubeLink"`
	FacebookLink  *string `json:"facebookLink"`
	InstagramLink *string `json:"instagramLink"`
	PixivLink     *string `json:"pixivLink"`
	PlurkLink     *string `json:"plurkLink"`
	BahaLink      *string `json:"bahaLink"`
	TwitchLink    *string `json:"twitchLink"`
	MyacgLink     *string `json:"myacgLink"`
	StoreLink     *string `json:"storeLink"`
	OfficialLink  *string `json:"officialLink"`
	Photo         *string `json:"photo"`
	Tags          []Tag   `json:"tags"`
}

// EventArtist is one booth of an artist at an event.
type EventArtist struct {
	Artist

	BoothName     *string `json:"boothName"`
	LocationDay01 *string `json:"locationDay01"`
	LocationDay02 *string `json:"locationDay02"`
	LocationDay03 *string `json:"locationDay03"`
	DM            *string `json:"dm"`
}
