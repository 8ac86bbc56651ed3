// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package catalog serves the small reference lists the directory UI filters by:
// the ranked tag list and the convention events.
package catalog

// Tag is one entry of the tag filter list.
type Tag struct {
	Name  string `json:"tag"`
	Count *int64 `json:"count"`
	Index int64  `json:"index"`
}

// Event is a convention with its own booth listing.
type Event struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
