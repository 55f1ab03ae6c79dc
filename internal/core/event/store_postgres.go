// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package event

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kenryalonzo/eventdev/internal/platform/database/schema"
	"github.com/kenryalonzo/eventdev/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed event store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// eventColumns is the canonical SELECT column list for core.event.
var eventColumns = strings.Join(schema.Event.Columns(), ", ")

// scanEvent hydrates a single row into an [Event].
// Tags and Agenda map onto text[] columns.
func scanEvent(row interface{ Scan(dest ...any) error }) (*Event, error) {
	record := &Event{}
	err := row.Scan(
		&record.ID, &record.Slug, &record.Title, &record.Description, &record.Overview,
		&record.Image, &record.Venue, &record.Location, &record.Date, &record.Time,
		&record.Mode, &record.Audience, &record.Agenda, &record.Organizer, &record.Tags,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// # Event Retrieval

/*
List returns the full event list, newest first by default storage order.

Parameters:
  - context: context.Context

Returns:
  - []*Event: All stored events
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context) ([]*Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s DESC
	`, eventColumns, schema.Event.Table, schema.Event.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_events")
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		record, err := scanEvent(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_event")
		}
		events = append(events, record)
	}

	return events, nil
}

/*
FindByID retrieves a single event by its primary key.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Event: Hydrated entity
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, eventColumns, schema.Event.Table, schema.Event.ID)

	record, err := scanEvent(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_event_by_id")
	}
	return record, nil
}

/*
FindBySlug retrieves a single event by its unique URL slug.

Parameters:
  - context: context.Context
  - slug: string

Returns:
  - *Event: Hydrated entity
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, eventColumns, schema.Event.Table, schema.Event.Slug)

	record, err := scanEvent(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_event_by_slug")
	}
	return record, nil
}

// # Event Mutation

/*
Create inserts a new event record and hydrates the system timestamps.

Parameters:
  - context: context.Context
  - event: *Event

Returns:
  - error: Conflict on slug collision, other persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, event *Event) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING %s, %s
	`, schema.Event.Table, eventColumns, schema.Event.CreatedAt, schema.Event.UpdatedAt)

	err := repository.db.QueryRow(context, query,
		event.ID, event.Slug, event.Title, event.Description, event.Overview,
		event.Image, event.Venue, event.Location, event.Date, event.Time,
		event.Mode, event.Audience, event.Agenda, event.Organizer, event.Tags,
	).Scan(&event.CreatedAt, &event.UpdatedAt)

	return dberr.Wrap(err, "create_event")
}

/*
DeleteBySlug removes an event record.

Parameters:
  - context: context.Context
  - slug: string

Returns:
  - error: ErrNotFound when no row matched, other persistence failures
*/
func (repository *PostgresRepository) DeleteBySlug(context context.Context, slug string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Event.Table, schema.Event.Slug)

	result, err := repository.db.Exec(context, query, slug)
	if err != nil {
		return dberr.Wrap(err, "delete_event")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
