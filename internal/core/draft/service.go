// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package draft

import (
	"context"
	"log/slog"

	"github.com/kenryalonzo/eventdev/internal/core/event"
	"github.com/kenryalonzo/eventdev/internal/platform/validate"
)

// # Service Layer

// Service orchestrates draft persistence. It also satisfies the event
// service's DraftClearer contract so a successful creation clears its draft.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs a new draft [Service].
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// FieldKey identifies the draft key in validation errors.
const FieldKey = "key"

// maxKeyLen bounds client-chosen draft keys.
const maxKeyLen = 128

/*
Save persists the form state under key, refreshing its TTL.

Parameters:
  - context: context.Context
  - key: string (Client-chosen draft key)
  - form: *event.FormState

Returns:
  - error: Validation or storage failures
*/
func (service *Service) Save(context context.Context, key string, form *event.FormState) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if err := service.store.Save(context, key, form); err != nil {
		return err
	}

	service.logger.Debug("draft_saved", slog.String("draft_key", key))

	return nil
}

/*
Load restores the form state stored under key.

Parameters:
  - context: context.Context
  - key: string

Returns:
  - *event.FormState: Restored form state
  - error: apperr.NotFound when absent or expired
*/
func (service *Service) Load(context context.Context, key string) (*event.FormState, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	return service.store.Load(context, key)
}

/*
Clear removes the draft stored under key. Absent drafts are a no-op.

Parameters:
  - context: context.Context
  - key: string

Returns:
  - error: Validation or storage failures
*/
func (service *Service) Clear(context context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	return service.store.Clear(context, key)
}

// validateKey bounds the client-chosen draft key.
func validateKey(key string) error {
	validator := &validate.Validator{}
	validator.Required(FieldKey, key).MaxLen(FieldKey, key, maxKeyLen)
	return validator.Err()
}
