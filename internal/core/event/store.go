// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package event

import "context"

// # Event Data Access

// Repository defines the data access contract for event records.
// The store stays dumb: all derivation and validation happens in the
// service layer before these methods are called.
type Repository interface {

	/*
		List returns every stored event. The query pipeline recomputes its
		view from the full list on each request, so no filtering happens here.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Event: All stored events
		  - error: Database retrieval failures
	*/
	List(context context.Context) ([]*Event, error)

	/*
		FindByID retrieves an event by its UUID.

		Parameters:
		  - context: context.Context
		  - id: string (UUIDv7)

		Returns:
		  - *Event: Hydrated entity
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*Event, error)

	/*
		FindBySlug retrieves an event by its URL slug.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Event: Hydrated entity
		  - error: ErrNotFound if missing
	*/
	FindBySlug(context context.Context, slug string) (*Event, error)

	/*
		Create persists a new event record. A slug collision surfaces as a
		unique-violation conflict.

		Parameters:
		  - context: context.Context
		  - event: *Event

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, event *Event) error

	/*
		DeleteBySlug removes an event record.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - error: ErrNotFound if no row matched
	*/
	DeleteBySlug(context context.Context, slug string) error
}
