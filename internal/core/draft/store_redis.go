// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/kenryalonzo/eventdev/internal/core/event"
	"github.com/kenryalonzo/eventdev/internal/platform/apperr"
	"github.com/kenryalonzo/eventdev/internal/platform/constants"
)

// RedisStore implements [Store] using Redis with a fixed TTL.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed draft store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

/*
Save serializes the form state and writes it under the namespaced key.
Every save refreshes the TTL, so an actively edited draft never expires.

Parameters:
  - context: context.Context
  - key: string
  - form: *event.FormState

Returns:
  - error: Serialization or execution errors
*/
func (store *RedisStore) Save(context context.Context, key string, form *event.FormState) error {
	payload, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("redis_draft_marshal_failed: %w", err)
	}

	redisKey := constants.RedisPrefixDraft + key

	if err := store.client.Set(context, redisKey, payload, constants.DraftTTL).Err(); err != nil {
		return fmt.Errorf("redis_draft_set_failed: %w", err)
	}

	return nil
}

/*
Load retrieves and deserializes the draft under key.

Description: Returns apperr.NotFound if the draft is absent or expired.

Parameters:
  - context: context.Context
  - key: string

Returns:
  - *event.FormState: Restored form state
  - error: apperr.NotFound or connectivity errors
*/
func (store *RedisStore) Load(context context.Context, key string) (*event.FormState, error) {
	redisKey := constants.RedisPrefixDraft + key

	payload, err := store.client.Get(context, redisKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Draft")
		}
		return nil, fmt.Errorf("redis_draft_get_failed: %w", err)
	}

	form := &event.FormState{}
	if err := json.Unmarshal(payload, form); err != nil {
		return nil, fmt.Errorf("redis_draft_unmarshal_failed: %w", err)
	}

	return form, nil
}

/*
Clear removes the draft under key. DEL on an absent key is a no-op.

Parameters:
  - context: context.Context
  - key: string

Returns:
  - error: Deletion failures
*/
func (store *RedisStore) Clear(context context.Context, key string) error {
	redisKey := constants.RedisPrefixDraft + key

	if err := store.client.Del(context, redisKey).Err(); err != nil {
		return fmt.Errorf("redis_draft_delete_failed: %w", err)
	}

	return nil
}
