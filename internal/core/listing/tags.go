// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/taibuivan/douren/internal/platform/database/schema"
	"github.com/taibuivan/douren/pkg/query"
	"github.com/taibuivan/douren/pkg/sqlq"
)

// tagPredicate keeps artists having at least one tag whose name contains Term.
//
// It checks author_tag through its own alias instead of filtering the joined tag
// rows: a joined row carries a single tag, so two tag filters on it could never
// both hold. With one EXISTS per tag, "a,b" keeps artists tagged with both.
type tagPredicate struct {
	Term string
}

// tagExists is the correlated subquery behind every tag filter.
var tagExists = fmt.Sprintf(
	"EXISTS (SELECT 1 FROM %s at2 WHERE at2.%s = %s AND at2.%s ILIKE ?)",
	schema.AuthorTag.Table, schema.AuthorTag.AuthorID,
	schema.AuthorMain.Field(schema.AuthorMain.UUID), schema.AuthorTag.TagName,
)

// ToSql implements [sq.Sqlizer].
func (p tagPredicate) ToSql() (string, []any, error) {
	return sq.Expr(tagExists, sqlq.LikePattern(p.Term)).ToSql()
}

// TagConditions turns a comma-separated tag list into one predicate per tag.
//
// Segments are trimmed and empty ones skipped, so "" and " , " yield no
// predicates. Duplicates are kept and tag existence is not checked.
func TagConditions(tags string) []sq.Sqlizer {
	names := query.StringSlice(tags)
	if len(names) == 0 {
		return nil
	}

	predicates := make([]sq.Sqlizer, 0, len(names))
	for _, name := range names {
		predicates = append(predicates, tagPredicate{Term: name})
	}
	return predicates
}
