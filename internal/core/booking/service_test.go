// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package booking_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenryalonzo/eventdev/internal/core/booking"
	"github.com/kenryalonzo/eventdev/internal/core/event"
	"github.com/kenryalonzo/eventdev/internal/platform/apperr"
)

// # Test Doubles

type stubRepository struct {
	created   []*booking.Booking
	createErr error
}

func (stub *stubRepository) Create(_ context.Context, record *booking.Booking) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	stub.created = append(stub.created, record)
	return nil
}

func (stub *stubRepository) List(_ context.Context, _, _ int) ([]*booking.Booking, int, error) {
	return stub.created, len(stub.created), nil
}

type stubDirectory struct {
	events map[string]*event.Event
}

func (stub *stubDirectory) GetByID(_ context.Context, id string) (*event.Event, error) {
	record, ok := stub.events[id]
	if !ok {
		return nil, apperr.NotFound("Event")
	}
	return record, nil
}

type stubMailer struct {
	sent    []string
	sendErr error
}

func (stub *stubMailer) Send(_ context.Context, to, _, _, _ string) error {
	if stub.sendErr != nil {
		return stub.sendErr
	}
	stub.sent = append(stub.sent, to)
	return nil
}

func newTestService(repo *stubRepository, directory *stubDirectory, mailer *stubMailer) *booking.Service {
	return booking.NewService(repo, directory, mailer, slog.Default())
}

func directoryWithEvent() *stubDirectory {
	return &stubDirectory{events: map[string]*event.Event{
		"evt-1": {
			ID:       "evt-1",
			Slug:     "react-conf-2024",
			Title:    "React Conf 2024",
			Date:     "2024-05-10",
			Venue:    "Moscone Center",
			Location: "San Francisco",
		},
	}}
}

// # Creation Tests

/*
TestService_Create_Success checks normalization, the denormalized slug, and
the confirmation send.
*/
func TestService_Create_Success(t *testing.T) {
	repo := &stubRepository{}
	mailer := &stubMailer{}
	service := newTestService(repo, directoryWithEvent(), mailer)

	record, err := service.Create(context.Background(), "evt-1", "  Jamie@Example.COM ")
	require.NoError(t, err)

	assert.Equal(t, "jamie@example.com", record.Email)
	assert.Equal(t, "evt-1", record.EventID)
	assert.Equal(t, "react-conf-2024", record.Slug)
	assert.NotEmpty(t, record.ID)

	require.Len(t, repo.created, 1)
	assert.Equal(t, []string{"jamie@example.com"}, mailer.sent)
}

/*
TestService_Create_ReferenceNotFound fails the save when the event does not
exist at check time, without touching the booking store.
*/
func TestService_Create_ReferenceNotFound(t *testing.T) {
	repo := &stubRepository{}
	service := newTestService(repo, &stubDirectory{events: map[string]*event.Event{}}, &stubMailer{})

	_, err := service.Create(context.Background(), "evt-missing", "jamie@example.com")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
	assert.Empty(t, repo.created)
}

/*
TestService_Create_EmailValidation covers the two-part local@domain pattern.
*/
func TestService_Create_EmailValidation(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"simple", "dev@example.com", true},
		{"subdomain", "dev@mail.example.co.uk", true},
		{"missing_at", "dev.example.com", false},
		{"missing_tld", "dev@example", false},
		{"embedded_space", "de v@example.com", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepository{}
			service := newTestService(repo, directoryWithEvent(), &stubMailer{})

			_, err := service.Create(context.Background(), "evt-1", tt.email)

			if tt.isValid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
				assert.Empty(t, repo.created)
			}
		})
	}
}

/*
TestService_Create_ConfirmationBestEffort keeps the booking when delivery
fails.
*/
func TestService_Create_ConfirmationBestEffort(t *testing.T) {
	repo := &stubRepository{}
	mailer := &stubMailer{sendErr: errors.New("ses: throttled")}
	service := newTestService(repo, directoryWithEvent(), mailer)

	record, err := service.Create(context.Background(), "evt-1", "jamie@example.com")
	require.NoError(t, err)
	assert.NotNil(t, record)
	require.Len(t, repo.created, 1)
}
