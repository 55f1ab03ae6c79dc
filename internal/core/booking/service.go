// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kenryalonzo/eventdev/internal/core/event"
	"github.com/kenryalonzo/eventdev/internal/platform/email"
	"github.com/kenryalonzo/eventdev/internal/platform/validate"
	"github.com/kenryalonzo/eventdev/pkg/uuidv7"
)

// # Service Layer

// EventDirectory is the read contract into the event directory used by the
// reference guard. Satisfied by the event service; kept narrow for tests.
type EventDirectory interface {
	GetByID(ctx context.Context, id string) (*event.Event, error)
}

// Service orchestrates business rules for bookings.
type Service struct {
	repo   Repository
	events EventDirectory
	mailer email.Mailer
	logger *slog.Logger
}

// NewService constructs a new booking [Service].
func NewService(repo Repository, events EventDirectory, mailer email.Mailer, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		events: events,
		mailer: mailer,
		logger: logger,
	}
}

/*
Create registers an email against an event.

Description: The email is trimmed, lowercased, and matched against the
two-part local@domain pattern. The referenced event must exist at save time;
the check and the insert are two separate reads with no transaction spanning
them. The slug is denormalized from the fetched event. After a successful
insert a confirmation email is sent best-effort; delivery failure never
fails the booking.

Parameters:
  - context: context.Context
  - eventID: string (UUIDv7 of the referenced event)
  - address: string (Attendee email)

Returns:
  - *Booking: Created record
  - error: Validation failures, ErrNotFound for a missing event
*/
func (service *Service) Create(context context.Context, eventID, address string) (*Booking, error) {
	address = strings.ToLower(strings.TrimSpace(address))

	validator := &validate.Validator{}
	validator.Required(FieldEventID, eventID)
	validator.Required(FieldEmail, address).Email(FieldEmail, address)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Reference guard: one read against the event directory per save attempt.
	referenced, err := service.events.GetByID(context, eventID)
	if err != nil {
		return nil, err
	}

	booking := &Booking{
		ID:      uuidv7.New(),
		EventID: referenced.ID,
		Slug:    referenced.Slug,
		Email:   address,
	}

	if err := service.repo.Create(context, booking); err != nil {
		return nil, err
	}

	service.logger.Info("booking_created",
		slog.String("booking_id", booking.ID),
		slog.String("event_id", booking.EventID),
		slog.String("slug", booking.Slug),
	)

	service.sendConfirmation(context, booking, referenced)

	return booking, nil
}

/*
List returns a paginated slice of bookings, newest first. Admin only at the
HTTP layer.

Parameters:
  - context: context.Context
  - limit, offset: int

Returns:
  - []*Booking: Slice of bookings
  - int: Total matching count
  - error: Retrieval failures
*/
func (service *Service) List(context context.Context, limit, offset int) ([]*Booking, int, error) {
	return service.repo.List(context, limit, offset)
}

// sendConfirmation delivers the registration confirmation. Best-effort: a
// failed send is logged and swallowed.
func (service *Service) sendConfirmation(context context.Context, booking *Booking, referenced *event.Event) {
	subject := fmt.Sprintf("You're booked: %s", referenced.Title)
	text := fmt.Sprintf(
		"Your spot at %s on %s (%s, %s) is confirmed. See you there!",
		referenced.Title, referenced.Date, referenced.Venue, referenced.Location,
	)
	html := fmt.Sprintf(
		"<p>Your spot at <strong>%s</strong> on %s (%s, %s) is confirmed.</p><p>See you there!</p>",
		referenced.Title, referenced.Date, referenced.Venue, referenced.Location,
	)

	if err := service.mailer.Send(context, booking.Email, subject, html, text); err != nil {
		service.logger.Warn("booking_confirmation_failed",
			slog.String("booking_id", booking.ID),
			slog.String("error", err.Error()),
		)
	}
}
