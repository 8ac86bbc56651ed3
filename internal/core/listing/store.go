// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import "context"

// Store executes composed listing queries.
//
// Implementations run the row and count halves of the pair and return the page
// rows together with the total number of matching rows.
type Store interface {
	FetchArtists(ctx context.Context, pair QueryPair) ([]Artist, int, error)
	FetchEventArtists(ctx context.Context, pair QueryPair) ([]EventArtist, int, error)
}
