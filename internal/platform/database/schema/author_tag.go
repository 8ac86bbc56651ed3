package schema

import "github.com/taibuivan/douren/pkg/sqlq"

// AuthorTagTable represents the 'author_tag' junction table
type AuthorTagTable struct {
	Table    string
	Alias    string
	AuthorID string
	TagName  string
}

// AuthorTag is the schema definition for author_tag
var AuthorTag = AuthorTagTable{
	Table:    `"author_tag"`,
	Alias:    "at",
	AuthorID: `"author_id"`,
	TagName:  `"tag_name"`,
}

// From returns the aliased table expression.
func (t AuthorTagTable) From() string { return t.Table + " " + t.Alias }

// Field qualifies a column with the table alias.
func (t AuthorTagTable) Field(column string) sqlq.Column { return sqlq.Field(t.Alias, column) }
