// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package booking

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kenryalonzo/eventdev/internal/platform/database/schema"
	"github.com/kenryalonzo/eventdev/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed booking store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
Create inserts a new booking record and hydrates the system timestamps.

Parameters:
  - context: context.Context
  - booking: *Booking

Returns:
  - error: Persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, booking *Booking) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.Booking.Table,
		schema.Booking.ID, schema.Booking.EventID, schema.Booking.Slug, schema.Booking.Email,
		schema.Booking.CreatedAt, schema.Booking.UpdatedAt,
		schema.Booking.CreatedAt, schema.Booking.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		booking.ID, booking.EventID, booking.Slug, booking.Email,
	).Scan(&booking.CreatedAt, &booking.UpdatedAt)

	return dberr.Wrap(err, "create_booking")
}

/*
List returns a paginated list of bookings, newest first.

Description: Uses COUNT(*) OVER() for total metadata in a single round trip.

Parameters:
  - context: context.Context
  - limit: int
  - offset: int

Returns:
  - []*Booking: Slice of bookings
  - int: Total record count
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Booking, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, COUNT(*) OVER() AS total
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.Booking.ID, schema.Booking.EventID, schema.Booking.Slug, schema.Booking.Email,
		schema.Booking.CreatedAt, schema.Booking.UpdatedAt,
		schema.Booking.Table,
		schema.Booking.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_bookings")
	}
	defer rows.Close()

	var bookings []*Booking
	var total int
	for rows.Next() {
		booking := &Booking{}
		err := rows.Scan(
			&booking.ID, &booking.EventID, &booking.Slug, &booking.Email,
			&booking.CreatedAt, &booking.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_booking")
		}
		bookings = append(bookings, booking)
	}

	return bookings, total, nil
}
