// Copyright (c) 2026 EventDev. All rights reserved.
// Author: kenry.alonzo@gmail.com

package event

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/kenryalonzo/eventdev/internal/platform/apperr"
	"github.com/kenryalonzo/eventdev/internal/platform/storage"
	"github.com/kenryalonzo/eventdev/pkg/slug"
	"github.com/kenryalonzo/eventdev/pkg/uuidv7"
)

// # Service Layer

// DraftClearer removes a stored creation draft once its event is persisted.
// Satisfied by the draft service; kept narrow so tests can stub it.
type DraftClearer interface {
	Clear(ctx context.Context, key string) error
}

// Service orchestrates business rules for the event directory.
// All write-path validation and normalization happens here, before storage.
type Service struct {
	repo    Repository
	objects storage.ObjectStore
	drafts  DraftClearer
	logger  *slog.Logger
}

// NewService constructs a new event [Service].
func NewService(repo Repository, objects storage.ObjectStore, drafts DraftClearer, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		objects: objects,
		drafts:  drafts,
		logger:  logger,
	}
}

// # Directory Reads

/*
List fetches the full event list and runs the query pipeline over it.

Parameters:
  - context: context.Context
  - query: Query (search, filter, sort)

Returns:
  - []*Event: Filtered, ordered view
  - error: Retrieval failures
*/
func (service *Service) List(context context.Context, query Query) ([]*Event, error) {
	events, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}
	return Run(events, query), nil
}

/*
GetBySlug retrieves a single event by its URL slug.

Parameters:
  - context: context.Context
  - slug: string

Returns:
  - *Event: Hydrated entity
  - error: ErrNotFound if missing
*/
func (service *Service) GetBySlug(context context.Context, slug string) (*Event, error) {
	return service.repo.FindBySlug(context, slug)
}

/*
GetByID retrieves a single event by its UUID. Used by the booking
reference guard.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *Event: Hydrated entity
  - error: ErrNotFound if missing
*/
func (service *Service) GetByID(context context.Context, id string) (*Event, error) {
	return service.repo.FindByID(context, id)
}

// # Event Creation

/*
Create validates a submitted creation form, uploads the image, and persists
the event.

Description: Runs the ordered submit validation (tags, agenda, image,
required text), derives the slug from the title, normalizes the date to
ISO YYYY-MM-DD, then uploads the image and inserts the record. A non-empty
draftKey is cleared after a successful insert; a failed insert leaves the
draft untouched so the caller loses no input.

Parameters:
  - context: context.Context
  - form: *FormState
  - image: *ImageUpload
  - draftKey: string (Optional draft to clear on success)

Returns:
  - *Event: Created record, including its slug and timestamps
  - error: Validation, upload, or persistence failures
*/
func (service *Service) Create(context context.Context, form *FormState, image *ImageUpload, draftKey string) (*Event, error) {
	form.Normalize()

	if err := form.ValidateSubmit(image); err != nil {
		return nil, err
	}

	derived := slug.Derive(form.Title)
	if derived == "" {
		return nil, apperr.ValidationError("Event title must contain at least one letter or digit",
			apperr.FieldError{Field: FieldTitle, Message: "Cannot consist of punctuation only"})
	}

	date, err := NormalizeDate(form.Date)
	if err != nil {
		return nil, apperr.ValidationError("Event date is not a valid calendar date",
			apperr.FieldError{Field: FieldDate, Message: "Not a valid calendar date"})
	}

	record := &Event{
		ID:          uuidv7.New(),
		Slug:        derived,
		Title:       form.Title,
		Description: form.Description,
		Overview:    form.Overview,
		Venue:       form.Venue,
		Location:    form.Location,
		Date:        date,
		Time:        form.Time,
		Mode:        Mode(form.Mode),
		Audience:    form.Audience,
		Agenda:      form.Agenda,
		Organizer:   form.Organizer,
		Tags:        form.Tags,
	}

	imageURL, err := service.objects.Upload(context, imageKey(record, image), image.Data, image.ContentType)
	if err != nil {
		return nil, err
	}
	record.Image = imageURL

	if err := service.repo.Create(context, record); err != nil {
		return nil, err
	}

	if draftKey != "" {
		if err := service.drafts.Clear(context, draftKey); err != nil {
			// Draft cleanup is best-effort; the TTL reaps leftovers.
			service.logger.Warn("draft_clear_failed",
				slog.String("draft_key", draftKey),
				slog.String("error", err.Error()),
			)
		}
	}

	service.logger.Info("event_created",
		slog.String("event_id", record.ID),
		slog.String("slug", record.Slug),
	)

	return record, nil
}

/*
Delete removes an event from the directory. Admin only at the HTTP layer.

Description: Bookings referencing the event are not touched; the reference
guard is a point-in-time check, so bookings made before the deletion remain
as historical records.

Parameters:
  - context: context.Context
  - slug: string

Returns:
  - error: ErrNotFound if missing, other persistence failures
*/
func (service *Service) Delete(context context.Context, slug string) error {
	if err := service.repo.DeleteBySlug(context, slug); err != nil {
		return err
	}

	service.logger.Info("event_deleted", slog.String("slug", slug))

	return nil
}

// imageKey builds a collision-free object key for the event image.
// The record ID is already unique; the original extension is kept so the
// object store serves a sensible content type.
func imageKey(record *Event, image *ImageUpload) string {
	extension := strings.ToLower(path.Ext(image.Filename))
	return fmt.Sprintf("events/%s%s", record.ID, extension)
}
