// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

/*
Package draft persists in-progress event creation forms.

A draft is the JSON-serialized [event.FormState] stored under a
client-chosen key. Image bytes are never part of a draft; the client
re-selects the file after a restore. Drafts expire after seven days so
abandoned forms do not accumulate.

# Core Responsibility

  - Boundary: Defines the [Store] interface the rest of the system
    depends on.
  - Backends: Redis for the running service, in-memory for tests.
*/
package draft

import (
	"context"

	"github.com/kenryalonzo/eventdev/internal/core/event"
)

// # Draft Storage Boundary

// Store is the persistence contract for creation drafts.
// The store holds serialized form state only; it never validates it.
type Store interface {

	/*
		Save writes or overwrites the draft under key.

		Parameters:
		  - context: context.Context
		  - key: string (Client-chosen draft key)
		  - form: *event.FormState

		Returns:
		  - error: Serialization or storage failures
	*/
	Save(context context.Context, key string, form *event.FormState) error

	/*
		Load retrieves the draft stored under key.

		Parameters:
		  - context: context.Context
		  - key: string

		Returns:
		  - *event.FormState: Restored form state
		  - error: apperr.NotFound when absent or expired
	*/
	Load(context context.Context, key string) (*event.FormState, error)

	/*
		Clear removes the draft under key. Clearing an absent draft is not
		an error.

		Parameters:
		  - context: context.Context
		  - key: string

		Returns:
		  - error: Storage failures
	*/
	Clear(context context.Context, key string) error
}
