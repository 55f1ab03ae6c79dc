// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

/*
Package storage provides object storage for uploaded event images.

The domain layer depends only on the [ObjectStore] interface; the concrete
MinIO implementation lives alongside it and is wired in cmd/api. The store
returns a public URL, which is what the event record persists — the database
never holds image bytes.
*/
package storage

import "context"

// ObjectStore is the write-side contract for binary media.
type ObjectStore interface {
	// Upload stores data under key with the given content type and returns
	// the publicly reachable URL of the stored object.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error

	// Ping verifies that the backing store is reachable.
	Ping(ctx context.Context) error
}
