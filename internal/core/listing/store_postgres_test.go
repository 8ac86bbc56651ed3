// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/douren/internal/platform/apperr"
)

// # Fake pgx

// fakeDB answers the row query from rows and the count query from count.
// The hooks run before answering and may block or fail.
type fakeDB struct {
	rows    [][]any
	rowsErr error
	iterErr error
	count   any

	countErr  error
	rowsHook  func(context.Context) error
	countHook func(context.Context) error

	mu      sync.Mutex
	queries []string
	args    [][]any
}

func (db *fakeDB) record(sql string, args []any) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.queries = append(db.queries, sql)
	db.args = append(db.args, args)
}

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	db.record(sql, args)
	if db.rowsHook != nil {
		if err := db.rowsHook(ctx); err != nil {
			return nil, err
		}
	}
	if db.rowsErr != nil {
		return nil, db.rowsErr
	}
	return &fakeRows{values: db.rows, err: db.iterErr}, nil
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db.record(sql, args)
	if db.countHook != nil {
		if err := db.countHook(ctx); err != nil {
			return fakeRow{err: err}
		}
	}
	if db.countErr != nil {
		return fakeRow{err: db.countErr}
	}
	return fakeRow{values: []any{db.count}}
}

type fakeRow struct {
	values []any
	err    error
}

func (row fakeRow) Scan(dest ...any) error {
	if row.err != nil {
		return row.err
	}
	return scanValues(row.values, dest)
}

type fakeRows struct {
	values [][]any
	pos    int
	err    error
	closed bool
}

func (rows *fakeRows) Close()                                       { rows.closed = true }
func (rows *fakeRows) Err() error                                   { return rows.err }
func (rows *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (rows *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (rows *fakeRows) RawValues() [][]byte                          { return nil }
func (rows *fakeRows) Conn() *pgx.Conn                              { return nil }

func (rows *fakeRows) Next() bool {
	if rows.closed || rows.pos >= len(rows.values) {
		return false
	}
	rows.pos++
	return true
}

func (rows *fakeRows) Scan(dest ...any) error {
	return scanValues(rows.values[rows.pos-1], dest)
}

func (rows *fakeRows) Values() ([]any, error) {
	return rows.values[rows.pos-1], nil
}

// scanValues assigns src to dest positionally with the same strictness pgx has
// for mismatched Go types. []byte sources decode as jsonb.
func scanValues(src, dest []any) error {
	if len(src) != len(dest) {
		return fmt.Errorf("number of field descriptions must equal number of destinations, got %d and %d", len(src), len(dest))
	}

	for i, value := range src {
		target := reflect.ValueOf(dest[i]).Elem()

		switch {
		case value == nil:
			target.Set(reflect.Zero(target.Type()))
		case reflect.TypeOf(value) == reflect.TypeOf([]byte(nil)):
			if err := json.Unmarshal(value.([]byte), dest[i]); err != nil {
				return fmt.Errorf("column %d: %w", i, err)
			}
		case reflect.TypeOf(value).AssignableTo(target.Type()):
			target.Set(reflect.ValueOf(value))
		case target.Kind() == reflect.Pointer && reflect.TypeOf(value).AssignableTo(target.Type().Elem()):
			boxed := reflect.New(target.Type().Elem())
			boxed.Elem().Set(reflect.ValueOf(value))
			target.Set(boxed)
		default:
			return fmt.Errorf("column %d: cannot scan %T into %T", i, value, dest[i])
		}
	}
	return nil
}

// rendezvous releases callers only once n of them have arrived, so a store that
// issues its queries one after the other fails instead of hanging.
func rendezvous(n int) func(context.Context) error {
	var arrived sync.WaitGroup
	arrived.Add(n)
	all := make(chan struct{})
	go func() {
		arrived.Wait()
		close(all)
	}()

	return func(context.Context) error {
		arrived.Done()
		select {
		case <-all:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("queries ran sequentially")
		}
	}
}

// artistValues is one listed artist row: every column carries a distinct value.
func artistValues(id int64) []any {
	values := []any{id, fmt.Sprintf("Artist %02d", id)}
	for _, column := range []string{
		"intro", "twitter", "youtube", "facebook", "instagram", "pixiv",
		"plurk", "baha", "twitch", "myacg", "store", "official", "photo",
	} {
		values = append(values, fmt.Sprintf("%s-%d", column, id))
	}
	return append(values, []byte(`[{"tagName":"原創","tagCount":15},{"tagName":"測試","tagCount":null}]`))
}

func wantArtist(id int64) Artist {
	link := func(column string) *string { return ptr(fmt.Sprintf("%s-%d", column, id)) }
	return Artist{
		UUID:          id,
		Author:        fmt.Sprintf("Artist %02d", id),
		Introduction:  link("intro"),
		TwitterLink:   link("twitter"),
		YoutubeLink:   link("youtube"),
		FacebookLink:  link("facebook"),
		InstagramLink: link("instagram"),
		PixivLink:     link("pixiv"),
		PlurkLink:     link("plurk"),
		BahaLink:      link("baha"),
		TwitchLink:    link("twitch"),
		MyacgLink:     link("myacg"),
		StoreLink:     link("store"),
		OfficialLink:  link("official"),
		Photo:         link("photo"),
		Tags: []Tag{
			{TagName: tagCreative, TagCount: ptr(int64(15))},
			{TagName: tagTesting},
		},
	}
}

// # Scenarios

/*
TestPostgresStore_FetchArtists scans every column in projection order, decodes
the aggregated tags, and reads the count as int64.
*/
func TestPostgresStore_FetchArtists(t *testing.T) {
	db := &fakeDB{
		rows:  [][]any{artistValues(3), artistValues(9)},
		count: int64(42),
	}
	pair := BuildArtistQuery(Params{Page: 1, Tag: tagCreative})

	rows, total, err := NewPostgresStore(db).FetchArtists(context.Background(), pair)
	require.NoError(t, err)

	assert.Equal(t, 42, total)
	assert.Equal(t, []Artist{wantArtist(3), wantArtist(9)}, rows)

	require.Len(t, db.queries, 2)
	rowsQuery, err := pair.Select.Compile()
	require.NoError(t, err)
	countQuery, err := pair.Count.Compile()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{rowsQuery.SQL, countQuery.SQL}, db.queries)
	assert.ElementsMatch(t, [][]any{rowsQuery.Args, countQuery.Args}, db.args)
}

/*
TestPostgresStore_FetchEventArtists appends the booth columns after the artist's.
*/
func TestPostgresStore_FetchEventArtists(t *testing.T) {
	values := append(artistValues(5), "Booth 16", "A05", "B05", nil, "dm-5")
	db := &fakeDB{rows: [][]any{values}, count: int64(1)}

	rows, total, err := NewPostgresStore(db).FetchEventArtists(context.Background(),
		BuildEventArtistQuery(Params{Page: 1}.WithEvent(nil, "FF42")))
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	assert.Equal(t, []EventArtist{{
		Artist:        wantArtist(5),
		BoothName:     ptr("Booth 16"),
		LocationDay01: ptr("A05"),
		LocationDay02: ptr("B05"),
		LocationDay03: nil,
		DM:            ptr("dm-5"),
	}}, rows)
}

/*
TestPostgresStore_EmptyPage returns a non-nil empty slice with the total.
*/
func TestPostgresStore_EmptyPage(t *testing.T) {
	db := &fakeDB{count: int64(45)}

	rows, total, err := NewPostgresStore(db).FetchArtists(context.Background(), BuildArtistQuery(Params{Page: 9}))
	require.NoError(t, err)

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
	assert.Equal(t, 45, total)
}

/*
TestPostgresStore_QueriesRunConcurrently requires both queries to be in flight
at the same time.
*/
func TestPostgresStore_QueriesRunConcurrently(t *testing.T) {
	both := rendezvous(2)
	db := &fakeDB{
		rows:      [][]any{artistValues(1)},
		count:     int64(1),
		rowsHook:  both,
		countHook: both,
	}

	rows, total, err := NewPostgresStore(db).FetchArtists(context.Background(), BuildArtistQuery(Params{Page: 1}))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 1, total)
}

/*
TestPostgresStore_Failures wraps every failing step into an internal error whose
hidden cause names the query.
*/
func TestPostgresStore_Failures(t *testing.T) {
	tests := []struct {
		name      string
		db        *fakeDB
		wantCause string
	}{
		{
			name:      "row_query",
			db:        &fakeDB{rowsErr: errors.New("relation missing"), count: int64(1)},
			wantCause: "list_artists: relation missing",
		},
		{
			name:      "row_iteration",
			db:        &fakeDB{rows: [][]any{artistValues(1)}, iterErr: errors.New("conn reset"), count: int64(1)},
			wantCause: "list_artists: conn reset",
		},
		{
			name:      "row_scan",
			db:        &fakeDB{rows: [][]any{{int64(1), "too few"}}, count: int64(1)},
			wantCause: "scan_list_artists: ",
		},
		{
			name:      "count_query",
			db:        &fakeDB{countErr: errors.New("timeout")},
			wantCause: "list_artists_count: timeout",
		},
		{
			name:      "count_type",
			db:        &fakeDB{count: "many"},
			wantCause: "list_artists_count: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewPostgresStore(tt.db).FetchArtists(context.Background(), BuildArtistQuery(Params{Page: 1}))
			require.Error(t, err)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "INTERNAL_ERROR", appErr.Code)
			assert.True(t, strings.HasPrefix(appErr.Cause.Error(), tt.wantCause), appErr.Cause.Error())
		})
	}
}

/*
TestPostgresStore_FailureCancelsSibling cancels the row query once the count fails.
*/
func TestPostgresStore_FailureCancelsSibling(t *testing.T) {
	var cancelled atomic.Bool
	db := &fakeDB{
		countErr: errors.New("timeout"),
		rowsHook: func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				cancelled.Store(true)
				return ctx.Err()
			case <-time.After(2 * time.Second):
				return errors.New("row query was never cancelled")
			}
		},
	}

	_, _, err := NewPostgresStore(db).FetchArtists(context.Background(), BuildArtistQuery(Params{Page: 1}))
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Cause.Error(), "list_artists_count")
	assert.True(t, cancelled.Load())
}

/*
TestPostgresStore_CompileFailure never reaches the database.
*/
func TestPostgresStore_CompileFailure(t *testing.T) {
	db := &fakeDB{}

	_, _, err := NewPostgresStore(db).FetchEventArtists(context.Background(), QueryPair{})
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Cause.Error(), "list_event_artists_compile")
	assert.Empty(t, db.queries)
}
