// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sqlq composes PostgreSQL SELECT statements on top of squirrel.
//
// # Overview
//
// A [Select] is a value type wrapping a [sq.SelectBuilder]. Every method returns
// a modified copy, so a base query can be forked into a row query and a count
// query and both can keep receiving filters in any order. Filters are kept as a
// plain []sq.Sqlizer until [Select.Compile] ANDs them into one WHERE clause and
// squirrel renders the statement with $n placeholders for pgx.
//
// Column and table identifiers are trusted input. They must come from the schema
// package, never from a request. Values always travel as arguments.
package sqlq

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Column is a qualified SQL column expression, e.g. `a."Author"`.
type Column string

// Field qualifies a column name with a table alias.
func Field(alias, name string) Column {
	if alias == "" {
		return Column(name)
	}
	return Column(alias + "." + name)
}

// # Comparisons

// Eq matches rows where column equals value.
func Eq(column Column, value any) sq.Eq {
	return sq.Eq{string(column): value}
}

// Neq matches rows where column differs from value. NULLs never match.
func Neq(column Column, value any) sq.NotEq {
	return sq.NotEq{string(column): value}
}

// # Substring match

// ILike matches rows whose column contains term, ignoring case.
// LIKE wildcards inside term are escaped and match literally.
func ILike(column Column, term string) sq.ILike {
	return sq.ILike{string(column): LikePattern(term)}
}

// LikePattern returns the escaped `%term%` pattern bound as the argument.
func LikePattern(term string) string {
	return "%" + EscapeLike(term) + "%"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the LIKE metacharacters using PostgreSQL's default escape (\).
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// # Grouping

// And combines predicates with AND. Nil entries are dropped; a single survivor is
// returned as is and an empty input yields nil.
func And(preds ...sq.Sqlizer) sq.Sqlizer {
	kept := compact(preds)
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return sq.And(kept)
}

func compact(preds []sq.Sqlizer) []sq.Sqlizer {
	kept := make([]sq.Sqlizer, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			kept = append(kept, p)
		}
	}
	return kept
}
