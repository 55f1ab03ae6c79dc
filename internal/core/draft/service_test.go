// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package draft_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenryalonzo/eventdev/internal/core/draft"
	"github.com/kenryalonzo/eventdev/internal/core/event"
	"github.com/kenryalonzo/eventdev/internal/platform/apperr"
)

func newTestService() *draft.Service {
	return draft.NewService(draft.NewMemoryStore(), slog.Default())
}

/*
TestService_SaveLoadClear walks the draft lifecycle against the in-memory
store.
*/
func TestService_SaveLoadClear(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	form := &event.FormState{
		Title: "React Conf 2024",
		Tags:  []string{"conference"},
	}

	require.NoError(t, service.Save(ctx, "draft-abc", form))

	restored, err := service.Load(ctx, "draft-abc")
	require.NoError(t, err)
	assert.Equal(t, "React Conf 2024", restored.Title)
	assert.Equal(t, []string{"conference"}, restored.Tags)

	require.NoError(t, service.Clear(ctx, "draft-abc"))

	_, err = service.Load(ctx, "draft-abc")
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)
}

/*
TestService_SaveOverwrites replaces an existing draft under the same key.
*/
func TestService_SaveOverwrites(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	require.NoError(t, service.Save(ctx, "draft-abc", &event.FormState{Title: "First"}))
	require.NoError(t, service.Save(ctx, "draft-abc", &event.FormState{Title: "Second"}))

	restored, err := service.Load(ctx, "draft-abc")
	require.NoError(t, err)
	assert.Equal(t, "Second", restored.Title)
}

/*
TestService_ClearAbsent is a no-op, not an error.
*/
func TestService_ClearAbsent(t *testing.T) {
	service := newTestService()
	assert.NoError(t, service.Clear(context.Background(), "never-saved"))
}

/*
TestService_KeyValidation bounds client-chosen keys.
*/
func TestService_KeyValidation(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	t.Run("empty_key", func(t *testing.T) {
		err := service.Save(ctx, "", &event.FormState{})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})

	t.Run("oversized_key", func(t *testing.T) {
		_, err := service.Load(ctx, strings.Repeat("k", 200))
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

/*
TestMemoryStore_Isolation verifies that loaded drafts are copies, so caller
mutation cannot corrupt the stored value.
*/
func TestMemoryStore_Isolation(t *testing.T) {
	store := draft.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "draft-abc", &event.FormState{Title: "Original"}))

	first, err := store.Load(ctx, "draft-abc")
	require.NoError(t, err)
	first.Title = "Mutated"

	second, err := store.Load(ctx, "draft-abc")
	require.NoError(t, err)
	assert.Equal(t, "Original", second.Title)
}
