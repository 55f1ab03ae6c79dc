/*
Package event provides the HTTP interface for the event directory.

# Routing Strategy

  - Public (v1): Listing with search/filter/sort, detail by slug, creation.
  - Restricted: Deletion requires a verified admin token.

Creation is multipart/form-data: the image arrives as a file part, every
other field as a text part. The response carries the created event so the
client can redirect to its slug.
*/
package event

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/kenryalonzo/eventdev/internal/platform/apperr"
	"github.com/kenryalonzo/eventdev/internal/platform/constants"
	"github.com/kenryalonzo/eventdev/internal/platform/middleware"
	requestutil "github.com/kenryalonzo/eventdev/internal/platform/request"
	"github.com/kenryalonzo/eventdev/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for event directory operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new event [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with event endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Directory
	router.Get("/", handler.listEvents)
	router.Get("/{slug}", handler.getEvent)
	router.Post("/", handler.createEvent)

	// ## Administrative
	router.With(middleware.RequireAdmin).Delete("/{slug}", handler.deleteEvent)

	return router
}

// # Directory Endpoints

/*
GET /api/v1/events.

Description: Returns the filtered, ordered event list. The full list is
fetched and the query pipeline recomputes the view per request.

Request:
  - q: string (Free-text search)
  - filter: string (Category id, "all" disables)
  - sort: string (newest, oldest, name-asc, name-desc, date-asc, date-desc)

Response:
  - 200: []Event: Filtered list
*/
func (handler *Handler) listEvents(writer http.ResponseWriter, request *http.Request) {
	queryParams := request.URL.Query()

	query := Query{
		Search: queryParams.Get("q"),
		Filter: queryParams.Get("filter"),
		Sort:   queryParams.Get("sort"),
	}

	events, err := handler.service.List(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if events == nil {
		events = []*Event{}
	}

	respond.OK(writer, events)
}

/*
GET /api/v1/events/{slug}.

Description: Retrieves full details of a single event.

Request:
  - slug: string

Response:
  - 200: Event: Success
  - 404: 404: ErrNotFound: Event not found
*/
func (handler *Handler) getEvent(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	record, err := handler.service.GetBySlug(request.Context(), slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

/*
POST /api/v1/events.

Description: Creates a new event from a multipart form. The optional
draft_key field names a server-side draft to clear once the event persists.

Request (multipart/form-data):
  - image: file (Required, image/*, max 5 MiB)
  - tags, agenda: repeated text parts (or one comma-separated part)
  - draft_key: string (Optional)
  - remaining fields: text parts matching the form field names

Response:
  - 201: Event: Created record including its slug
  - 400: 400: Validation: First failing check's message
  - 409: 409: Conflict: Slug already taken
  - 413: 413: PayloadTooLarge: Image over 5 MiB
*/
func (handler *Handler) createEvent(writer http.ResponseWriter, request *http.Request) {
	// One extra MiB of headroom for the text parts.
	if err := request.ParseMultipartForm(constants.MaxImageBytes + 1<<20); err != nil {
		respond.Error(writer, request, apperr.ValidationError("Request body must be valid multipart form data"))
		return
	}

	form := &FormState{
		Title:       request.FormValue(FieldTitle),
		Description: request.FormValue(FieldDescription),
		Overview:    request.FormValue(FieldOverview),
		Venue:       request.FormValue(FieldVenue),
		Location:    request.FormValue(FieldLocation),
		Date:        request.FormValue(FieldDate),
		Time:        request.FormValue(FieldTime),
		Mode:        request.FormValue(FieldMode),
		Audience:    request.FormValue(FieldAudience),
		Organizer:   request.FormValue(FieldOrganizer),
		Tags:        collectionValues(request, FieldTags),
		Agenda:      collectionValues(request, FieldAgenda),
	}

	image, err := readImagePart(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.Create(request.Context(), form, image, request.FormValue("draft_key"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, record)
}

/*
DELETE /api/v1/events/{slug}.

Description: Removes an event from the directory. Existing bookings are kept
as historical records.

Request:
  - slug: string

Response:
  - 204: No Content: Success
  - 401: 401: ErrUnauthorized: Admin authentication required
  - 403: 403: ErrForbidden: Admin role required
  - 404: 404: ErrNotFound: Event not found
*/
func (handler *Handler) deleteEvent(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.Param(request, "slug")

	if err := handler.service.Delete(request.Context(), slug); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Multipart Helpers

// collectionValues gathers a repeated text part. A single comma-separated
// part is split, so both tag-input styles round-trip.
func collectionValues(request *http.Request, field string) []string {
	values := request.MultipartForm.Value[field]
	if len(values) == 1 && strings.Contains(values[0], ",") {
		values = strings.Split(values[0], ",")
	}

	var collected []string
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			collected = append(collected, trimmed)
		}
	}
	return collected
}

// readImagePart extracts the image file part. A missing part returns a nil
// upload; the ordered submit validation owns the "please select" message.
func readImagePart(request *http.Request) (*ImageUpload, error) {
	file, header, err := request.FormFile(FieldImage)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, apperr.ValidationError("Event image could not be read")
	}
	defer file.Close()

	// Read one byte past the cap so the size check can reject oversize
	// uploads without buffering them whole.
	data, err := io.ReadAll(io.LimitReader(file, constants.MaxImageBytes+1))
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &ImageUpload{
		Filename:    header.Filename,
		ContentType: partContentType(header),
		Data:        data,
	}, nil
}

// partContentType reads the declared MIME type of the file part.
func partContentType(header *multipart.FileHeader) string {
	return header.Header.Get("Content-Type")
}
