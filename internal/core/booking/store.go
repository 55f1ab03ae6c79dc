// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package booking

import "context"

// # Booking Data Access

// Repository defines the data access contract for booking records.
type Repository interface {

	/*
		Create persists a new booking.

		Parameters:
		  - context: context.Context
		  - booking: *Booking

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, booking *Booking) error

	/*
		List returns a paginated slice of bookings, newest first, and the
		total count.

		Parameters:
		  - context: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []*Booking: Slice of bookings
		  - int: Total record count
		  - error: Database retrieval failures
	*/
	List(context context.Context, limit, offset int) ([]*Booking, int, error)
}
