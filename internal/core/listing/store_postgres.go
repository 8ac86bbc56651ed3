// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package listing

import (
	"context"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/douren/internal/platform/dberr"
	"github.com/taibuivan/douren/pkg/sqlq"
)

// Querier is the subset of [pgxpool.Pool] the store needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresStore struct {
	db Querier
}

func NewPostgresStore(db Querier) *PostgresStore {
	return &PostgresStore{db: db}
}

func (store *PostgresStore) FetchArtists(ctx context.Context, pair QueryPair) ([]Artist, int, error) {
	return fetchPage(ctx, store.db, pair, "list_artists", func(row pgx.Row) (Artist, error) {
		var artist Artist
		err := row.Scan(artistDest(&artist)...)
		return artist, err
	})
}

func (store *PostgresStore) FetchEventArtists(ctx context.Context, pair QueryPair) ([]EventArtist, int, error) {
	return fetchPage(ctx, store.db, pair, "list_event_artists", func(row pgx.Row) (EventArtist, error) {
		var booth EventArtist
		dest := append(artistDest(&booth.Artist),
			&booth.BoothName, &booth.LocationDay01, &booth.LocationDay02, &booth.LocationDay03, &booth.DM)
		err := row.Scan(dest...)
		return booth, err
	})
}

// fetchPage compiles both statements, then runs the row and count queries
// concurrently. The first failure cancels the other query.
func fetchPage[T any](ctx context.Context, db Querier, pair QueryPair, action string, scan func(pgx.Row) (T, error)) ([]T, int, error) {
	rowsQuery, err := pair.Select.Compile()
	if err != nil {
		return nil, 0, dberr.Wrap(err, action+"_compile")
	}
	countQuery, err := pair.Count.Compile()
	if err != nil {
		return nil, 0, dberr.Wrap(err, action+"_compile")
	}

	var (
		rows  []T
		total int
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		rows, err = queryRows(groupCtx, db, rowsQuery, action, scan)
		return err
	})

	group.Go(func() error {
		var err error
		total, err = queryCount(groupCtx, db, countQuery, action+"_count")
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func queryRows[T any](ctx context.Context, db Querier, query sqlq.Query, action string, scan func(pgx.Row) (T, error)) ([]T, error) {
	rows, err := db.Query(ctx, query.SQL, query.Args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_"+action)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, action)
	}
	return items, nil
}

func queryCount(ctx context.Context, db Querier, query sqlq.Query, action string) (int, error) {
	var total int64
	if err := db.QueryRow(ctx, query.SQL, query.Args...).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, action)
	}
	return int(total), nil
}

// artistDest lists scan targets in [schema.AuthorMainTable.Listed] order,
// followed by the aggregated tags.
func artistDest(artist *Artist) []any {
	return []any{
		&artist.UUID, &artist.Author, &artist.Introduction,
		&artist.TwitterLink, &artist.YoutubeLink, &artist.FacebookLink, &artist.InstagramLink,
		&artist.PixivLink, &artist.PlurkLink, &artist.BahaLink, &artist.TwitchLink,
		&artist.MyacgLink, &artist.StoreLink, &artist.OfficialLink, &artist.Photo,
		&artist.Tags,
	}
}
