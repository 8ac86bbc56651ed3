package schema

import "github.com/taibuivan/douren/pkg/sqlq"

// EventTable represents the '"Event"' table
type EventTable struct {
	Table string
	Alias string
	ID    string
	Name  string
}

// Event is the schema definition for "Event"
var Event = EventTable{
	Table: `"Event"`,
	Alias: "e",
	ID:    `"id"`,
	Name:  `"name"`,
}

// From returns the aliased table expression.
func (t EventTable) From() string { return t.Table + " " + t.Alias }

// Field qualifies a column with the table alias.
func (t EventTable) Field(column string) sqlq.Column { return sqlq.Field(t.Alias, column) }

func (t EventTable) Columns() []string {
	return []string{t.ID, t.Name}
}
