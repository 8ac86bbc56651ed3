// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sqlq

import (
	"fmt"
	"slices"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/taibuivan/douren/pkg/pagination"
)

// # Ordering

// Direction is the sort direction of an ORDER BY clause.
type Direction int

const (
	Desc Direction = iota
	Asc
)

// ParseDirection maps "asc" (any case) to [Asc]. Anything else sorts descending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), "asc") {
		return Asc
	}
	return Desc
}

// String returns the SQL keyword.
func (d Direction) String() string {
	if d == Asc {
		return "ASC"
	}
	return "DESC"
}

// Order is a single ORDER BY term.
type Order struct {
	Column    Column
	Direction Direction
}

// # Select

// statement renders pgx-style $n placeholders.
var statement = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Select describes a SELECT statement.
//
// Projection, joins and grouping live in the wrapped squirrel builder. Filters,
// ordering and pagination are held apart so they can be inspected and so that
// the last OrderBy wins; they are only applied in [Select.ToSql].
type Select struct {
	base     sq.SelectBuilder
	filters  []sq.Sqlizer
	order    *Order
	tieBreak Column
	limit    int
	offset   int
	paged    bool
}

// From starts a query on the given (aliased) table expression.
func From(table string) Select {
	return Select{base: statement.Select().From(table)}
}

// Columns appends to the projection.
func (s Select) Columns(columns ...string) Select {
	s.base = s.base.Columns(columns...)
	return s
}

// LeftJoin appends a LEFT JOIN of table on a trusted condition.
func (s Select) LeftJoin(table, on string) Select {
	s.base = s.base.LeftJoin(table + " ON " + on)
	return s
}

// GroupBy appends to the GROUP BY list.
func (s Select) GroupBy(columns ...Column) Select {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = string(c)
	}
	s.base = s.base.GroupBy(names...)
	return s
}

// Where adds a filter. A nil predicate is a no-op.
func (s Select) Where(p sq.Sqlizer) Select {
	if p == nil {
		return s
	}
	s.filters = append(slices.Clone(s.filters), p)
	return s
}

// And adds every predicate as an independent AND-ed filter.
// An empty list is a no-op.
func (s Select) And(preds ...sq.Sqlizer) Select {
	kept := compact(preds)
	if len(kept) == 0 {
		return s
	}
	s.filters = append(slices.Clone(s.filters), kept...)
	return s
}

// OrderBy sets the ordering clause. Calling it again replaces the previous one.
func (s Select) OrderBy(direction Direction, column Column) Select {
	s.order = &Order{Column: column, Direction: direction}
	return s
}

// TieBreak appends column ASC after the ordering clause so that pages of rows
// with equal sort keys stay disjoint. It has no effect without [Select.OrderBy].
func (s Select) TieBreak(column Column) Select {
	s.tieBreak = column
	return s
}

// Paginate applies LIMIT size OFFSET (page-1)*size. Pages below 1 are treated as 1.
func (s Select) Paginate(page, size int) Select {
	s.limit = max(size, 0)
	s.offset = pagination.Offset(page, size)
	s.paged = true
	return s
}

// # Introspection

// Filters returns a copy of the AND-ed filter list.
func (s Select) Filters() []sq.Sqlizer {
	return slices.Clone(s.filters)
}

// Ordering returns the ordering clause, if any.
func (s Select) Ordering() (Order, bool) {
	if s.order == nil {
		return Order{}, false
	}
	return *s.order, true
}

// Window returns the LIMIT/OFFSET pair, if pagination was applied.
func (s Select) Window() (limit, offset int, ok bool) {
	return s.limit, s.offset, s.paged
}

// # Compilation

// Query is a compiled statement ready for execution.
type Query struct {
	SQL  string
	Args []any
}

// ToSql implements [sq.Sqlizer]. It can be called any number of times.
func (s Select) ToSql() (string, []any, error) {
	query := s.base

	if len(s.filters) > 0 {
		query = query.Where(sq.And(s.filters))
	}

	if s.order != nil {
		terms := []string{string(s.order.Column) + " " + s.order.Direction.String()}
		if s.tieBreak != "" && s.tieBreak != s.order.Column {
			terms = append(terms, string(s.tieBreak)+" ASC")
		}
		query = query.OrderBy(terms...)
	}

	if s.paged {
		query = query.Limit(uint64(s.limit)).Offset(uint64(s.offset))
	}

	return query.ToSql()
}

// Compile renders the statement into a [Query].
func (s Select) Compile() (Query, error) {
	sql, args, err := s.ToSql()
	if err != nil {
		return Query{}, fmt.Errorf("sqlq: compile: %w", err)
	}
	return Query{SQL: sql, Args: args}, nil
}
