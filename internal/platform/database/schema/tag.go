package schema

import "github.com/taibuivan/douren/pkg/sqlq"

// TagTable represents the 'tag' table
type TagTable struct {
	Table string
	Alias string
	Tag   string
	Count string
	Index string
}

// Tag is the schema definition for tag. The tag name is the primary key.
var Tag = TagTable{
	Table: `"tag"`,
	Alias: "t",
	Tag:   `"tag"`,
	Count: `"count"`,
	Index: `"index"`,
}

// From returns the aliased table expression.
func (t TagTable) From() string { return t.Table + " " + t.Alias }

// Field qualifies a column with the table alias.
func (t TagTable) Field(column string) sqlq.Column { return sqlq.Field(t.Alias, column) }

func (t TagTable) Columns() []string {
	return []string{t.Tag, t.Count, t.Index}
}
