// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package draft

import (
	"context"
	"sync"

	"github.com/kenryalonzo/eventdev/internal/core/event"
	"github.com/kenryalonzo/eventdev/internal/platform/apperr"
)

// MemoryStore implements [Store] in process memory.
// It is the test double for the Redis store; TTL expiry is not simulated.
type MemoryStore struct {
	mu     sync.RWMutex
	drafts map[string]event.FormState
}

// NewMemoryStore creates an empty in-memory draft store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{drafts: make(map[string]event.FormState)}
}

// Save stores a copy of the form state under key.
func (store *MemoryStore) Save(_ context.Context, key string, form *event.FormState) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.drafts[key] = *form
	return nil
}

// Load returns a copy of the draft under key, or apperr.NotFound.
func (store *MemoryStore) Load(_ context.Context, key string) (*event.FormState, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	form, ok := store.drafts[key]
	if !ok {
		return nil, apperr.NotFound("Draft")
	}
	return &form, nil
}

// Clear removes the draft under key. Absent keys are a no-op.
func (store *MemoryStore) Clear(_ context.Context, key string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	delete(store.drafts, key)
	return nil
}
