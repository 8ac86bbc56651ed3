// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/douren/internal/platform/database/schema"
	"github.com/taibuivan/douren/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListTags(ctx context.Context) ([]Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.Tag.Tag, schema.Tag.Count, schema.Tag.Index,
		schema.Tag.Table, schema.Tag.Index)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]Tag, 0)
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.Name, &t.Count, &t.Index); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}

	return tags, nil
}

func (repository *PostgresRepository) ListEvents(ctx context.Context) ([]Event, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s DESC`,
		schema.Event.ID, schema.Event.Name, schema.Event.Table, schema.Event.ID)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_events")
	}
	defer rows.Close()

	events := make([]Event, 0)
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_event")
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_events")
	}

	return events, nil
}

func (repository *PostgresRepository) GetEventByID(ctx context.Context, id int64) (*Event, error) {
	return repository.getEvent(ctx, schema.Event.ID, id, "get_event_by_id")
}

func (repository *PostgresRepository) GetEventByName(ctx context.Context, name string) (*Event, error) {
	return repository.getEvent(ctx, schema.Event.Name, name, "get_event_by_name")
}

func (repository *PostgresRepository) getEvent(ctx context.Context, column string, value any, action string) (*Event, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.Event.ID, schema.Event.Name, schema.Event.Table, column)

	event := &Event{}
	if err := repository.db.QueryRow(ctx, query, value).Scan(&event.ID, &event.Name); err != nil {
		return nil, dberr.WrapResource(err, action, "Event")
	}
	return event, nil
}
