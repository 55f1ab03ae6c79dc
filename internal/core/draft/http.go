/*
Package draft provides the HTTP interface for creation-draft persistence.

# Routing Strategy

  - Public (v1): GET/PUT/DELETE /drafts/{key}. Keys are client-chosen;
    there is no account scoping, matching the anonymous creation flow.
*/
package draft

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kenryalonzo/eventdev/internal/core/event"
	requestutil "github.com/kenryalonzo/eventdev/internal/platform/request"
	"github.com/kenryalonzo/eventdev/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for draft operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new draft [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with draft endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{key}", handler.loadDraft)
	router.Put("/{key}", handler.saveDraft)
	router.Delete("/{key}", handler.clearDraft)

	return router
}

// # Draft Endpoints

/*
GET /api/v1/drafts/{key}.

Description: Restores a previously saved creation draft. The image is never
part of a draft; the client re-selects the file.

Request:
  - key: string

Response:
  - 200: FormState: Restored draft
  - 404: 404: ErrNotFound: Draft absent or expired
*/
func (handler *Handler) loadDraft(writer http.ResponseWriter, request *http.Request) {
	key := requestutil.Param(request, "key")

	form, err := handler.service.Load(request.Context(), key)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, form)
}

/*
PUT /api/v1/drafts/{key}.

Description: Saves or overwrites a creation draft. Every save refreshes the
seven-day TTL.

Request (Body):
  - FormState JSON object (all non-image form fields)

Response:
  - 200: FormState: Saved draft
  - 400: 400: ErrInvalidJSON/Validation: Invalid body or key
*/
func (handler *Handler) saveDraft(writer http.ResponseWriter, request *http.Request) {
	key := requestutil.Param(request, "key")

	var form event.FormState
	if err := requestutil.DecodeJSON(request, &form); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Save(request.Context(), key, &form); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, form)
}

/*
DELETE /api/v1/drafts/{key}.

Description: Discards a creation draft. Clearing an absent draft succeeds.

Request:
  - key: string

Response:
  - 204: No Content: Success
*/
func (handler *Handler) clearDraft(writer http.ResponseWriter, request *http.Request) {
	key := requestutil.Param(request, "key")

	if err := handler.service.Clear(request.Context(), key); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
