package schema

import "github.com/taibuivan/douren/pkg/sqlq"

// EventDMTable represents the '"Event_DM"' table: one artist's booth at one event
type EventDMTable struct {
	Table         string
	Alias         string
	UUID          string
	LocationDay01 string
	LocationDay02 string
	LocationDay03 string
	BoothName     string
	DM            string
	ArtistID      string
	EventID       string
}

// EventDM is the schema definition for "Event_DM"
var EventDM = EventDMTable{
	Table:         `"Event_DM"`,
	Alias:         "d",
	UUID:          `"uuid"`,
	LocationDay01: `"Location_Day01"`,
	LocationDay02: `"Location_Day02"`,
	LocationDay03: `"Location_Day03"`,
	BoothName:     `"Booth_name"`,
	DM:            `"DM"`,
	ArtistID:      `"artist_id"`,
	EventID:       `"event_id"`,
}

// From returns the aliased table expression.
func (t EventDMTable) From() string { return t.Table + " " + t.Alias }

// Field qualifies a column with the table alias.
func (t EventDMTable) Field(column string) sqlq.Column { return sqlq.Field(t.Alias, column) }

// Listed returns the booth columns projected by event listings, in scan order.
func (t EventDMTable) Listed() []string {
	return []string{t.BoothName, t.LocationDay01, t.LocationDay02, t.LocationDay03, t.DM}
}
