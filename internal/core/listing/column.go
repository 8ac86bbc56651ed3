// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"github.com/taibuivan/douren/internal/platform/database/schema"
	"github.com/taibuivan/douren/pkg/sqlq"
)

// DefaultColumn is the author display name, used for any unknown column name.
var DefaultColumn = schema.AuthorMain.Field(schema.AuthorMain.Author)

// ColumnSet is a closed allow-list from client-facing column names to SQL columns.
//
// Sort and search targets come straight from the query string, so they are only
// ever looked up here and never interpolated.
type ColumnSet map[string]sqlq.Column

// Resolve returns the column for name, or [DefaultColumn] when name is unknown.
func (set ColumnSet) Resolve(name string) sqlq.Column {
	if column, ok := set[name]; ok {
		return column
	}
	return DefaultColumn
}

// ArtistColumns are the names accepted by the artist listing.
var ArtistColumns = ColumnSet{
	"Author_Main(Author)": DefaultColumn,
	"Author_Main.Author":  DefaultColumn,
}

// EventArtistColumns extends [ArtistColumns] with the booth fields of an event listing.
var EventArtistColumns = ColumnSet{
	"Author_Main(Author)": DefaultColumn,
	"Author_Main.Author":  DefaultColumn,
	"Booth_name":          schema.EventDM.Field(schema.EventDM.BoothName),
	"Location_Day01":      schema.EventDM.Field(schema.EventDM.LocationDay01),
	"Location_Day02":      schema.EventDM.Field(schema.EventDM.LocationDay02),
	"Location_Day03":      schema.EventDM.Field(schema.EventDM.LocationDay03),
}

// ResolveColumn resolves name against the widest allow-list. It never fails.
func ResolveColumn(name string) sqlq.Column {
	return EventArtistColumns.Resolve(name)
}
