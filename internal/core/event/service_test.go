// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package event_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenryalonzo/eventdev/internal/core/event"
	"github.com/kenryalonzo/eventdev/internal/platform/apperr"
)

// # Test Doubles

type stubRepository struct {
	events    []*event.Event
	created   []*event.Event
	createErr error
	deleted   []string
}

func (stub *stubRepository) List(_ context.Context) ([]*event.Event, error) {
	return stub.events, nil
}

func (stub *stubRepository) FindByID(_ context.Context, id string) (*event.Event, error) {
	for _, record := range stub.events {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, apperr.NotFound("Event")
}

func (stub *stubRepository) FindBySlug(_ context.Context, slug string) (*event.Event, error) {
	for _, record := range stub.events {
		if record.Slug == slug {
			return record, nil
		}
	}
	return nil, apperr.NotFound("Event")
}

func (stub *stubRepository) Create(_ context.Context, record *event.Event) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	stub.created = append(stub.created, record)
	return nil
}

func (stub *stubRepository) DeleteBySlug(_ context.Context, slug string) error {
	stub.deleted = append(stub.deleted, slug)
	return nil
}

type stubObjectStore struct {
	uploads []string
}

func (stub *stubObjectStore) Upload(_ context.Context, key string, _ []byte, _ string) (string, error) {
	stub.uploads = append(stub.uploads, key)
	return "http://storage.local/eventdev-images/" + key, nil
}

func (stub *stubObjectStore) Delete(_ context.Context, _ string) error { return nil }
func (stub *stubObjectStore) Ping(_ context.Context) error             { return nil }

type stubDraftClearer struct {
	cleared []string
}

func (stub *stubDraftClearer) Clear(_ context.Context, key string) error {
	stub.cleared = append(stub.cleared, key)
	return nil
}

func newTestService(repo *stubRepository, objects *stubObjectStore, drafts *stubDraftClearer) *event.Service {
	return event.NewService(repo, objects, drafts, slog.Default())
}

// # Creation Tests

/*
TestService_Create_Success walks the full happy path: validation, slug
derivation, date normalization, image upload, persistence, draft clearing.
*/
func TestService_Create_Success(t *testing.T) {
	repo := &stubRepository{}
	objects := &stubObjectStore{}
	drafts := &stubDraftClearer{}
	service := newTestService(repo, objects, drafts)

	form := completeForm()
	form.Date = "2024-05-10T09:00:00Z"

	record, err := service.Create(context.Background(), form, pngUpload(), "draft-abc")
	require.NoError(t, err)

	assert.Equal(t, "react-conf-2024", record.Slug)
	assert.Equal(t, "2024-05-10", record.Date)
	assert.Equal(t, event.ModeOffline, record.Mode)
	assert.NotEmpty(t, record.ID)
	assert.Contains(t, record.Image, "events/"+record.ID)

	require.Len(t, repo.created, 1)
	require.Len(t, objects.uploads, 1)
	assert.Equal(t, []string{"draft-abc"}, drafts.cleared)
}

/*
TestService_Create_ZeroTags verifies the first ordered check fires and the
persistence boundary is never touched.
*/
func TestService_Create_ZeroTags(t *testing.T) {
	repo := &stubRepository{}
	objects := &stubObjectStore{}
	drafts := &stubDraftClearer{}
	service := newTestService(repo, objects, drafts)

	form := completeForm()
	form.Tags = nil

	_, err := service.Create(context.Background(), form, pngUpload(), "draft-abc")
	require.Error(t, err)
	assert.Equal(t, "Please add at least one tag", apperr.As(err).Message)

	assert.Empty(t, repo.created)
	assert.Empty(t, objects.uploads)
	assert.Empty(t, drafts.cleared)
}

/*
TestService_Create_InvalidDate rejects unparseable dates before any upload.
*/
func TestService_Create_InvalidDate(t *testing.T) {
	repo := &stubRepository{}
	objects := &stubObjectStore{}
	service := newTestService(repo, objects, &stubDraftClearer{})

	form := completeForm()
	form.Date = "someday soon"

	_, err := service.Create(context.Background(), form, pngUpload(), "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)

	assert.Empty(t, objects.uploads)
	assert.Empty(t, repo.created)
}

/*
TestService_Create_PunctuationOnlyTitle rejects titles whose derived slug
is empty instead of storing a colliding blank identifier.
*/
func TestService_Create_PunctuationOnlyTitle(t *testing.T) {
	repo := &stubRepository{}
	service := newTestService(repo, &stubObjectStore{}, &stubDraftClearer{})

	form := completeForm()
	form.Title = "   ---   "

	_, err := service.Create(context.Background(), form, pngUpload(), "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	assert.Empty(t, repo.created)
}

/*
TestService_Create_PersistFailureKeepsDraft leaves the draft intact when
the insert fails so the caller loses no input.
*/
func TestService_Create_PersistFailureKeepsDraft(t *testing.T) {
	repo := &stubRepository{createErr: apperr.Conflict("A record with the same identifier already exists")}
	drafts := &stubDraftClearer{}
	service := newTestService(repo, &stubObjectStore{}, drafts)

	_, err := service.Create(context.Background(), completeForm(), pngUpload(), "draft-abc")
	require.Error(t, err)
	assert.Equal(t, 409, apperr.As(err).HTTPStatus)
	assert.Empty(t, drafts.cleared)
}

// # Listing Tests

/*
TestService_List runs the query pipeline over the repository's full list.
*/
func TestService_List(t *testing.T) {
	repo := &stubRepository{events: fixtureEvents()}
	service := newTestService(repo, &stubObjectStore{}, &stubDraftClearer{})

	result, err := service.List(context.Background(), event.Query{Search: "react", Filter: event.FilterAll})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "React Conf", result[0].Title)
}

/*
TestService_Delete delegates to the store by slug.
*/
func TestService_Delete(t *testing.T) {
	repo := &stubRepository{}
	service := newTestService(repo, &stubObjectStore{}, &stubDraftClearer{})

	require.NoError(t, service.Delete(context.Background(), "react-conf-2024"))
	assert.Equal(t, []string{"react-conf-2024"}, repo.deleted)
}
