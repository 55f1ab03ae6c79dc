/*
Package booking provides the HTTP interface for event registrations.

# Routing Strategy

  - Public (v1): Creation (POST /bookings).
  - Restricted: Paginated listing requires a verified admin token.
*/
package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kenryalonzo/eventdev/internal/platform/middleware"
	requestutil "github.com/kenryalonzo/eventdev/internal/platform/request"
	"github.com/kenryalonzo/eventdev/internal/platform/respond"
	"github.com/kenryalonzo/eventdev/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for booking operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new booking [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with booking endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createBooking)
	router.With(middleware.RequireAdmin).Get("/", handler.listBookings)

	return router
}

// createBookingInput is the JSON request body for booking creation.
type createBookingInput struct {
	EventID string `json:"event_id"`
	Email   string `json:"email"`
}

// # Booking Endpoints

/*
POST /api/v1/bookings.

Description: Registers an email against an event. The referenced event must
exist at save time.

Request (Body):
  - { "event_id": "string", "email": "string" }

Response:
  - 201: Booking: Created record
  - 400: 400: Validation: Missing fields or invalid email pattern
  - 404: 404: ErrNotFound: Referenced event not found
*/
func (handler *Handler) createBooking(writer http.ResponseWriter, request *http.Request) {
	var input createBookingInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	booking, err := handler.service.Create(request.Context(), input.EventID, input.Email)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, booking)
}

/*
GET /api/v1/bookings.

Description: Retrieves a paginated list of bookings, newest first.

Request:
  - limit: int
  - page: int

Response:
  - 200: []Booking: Paginated list
  - 401: 401: ErrUnauthorized: Admin authentication required
  - 403: 403: ErrForbidden: Admin role required
*/
func (handler *Handler) listBookings(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	bookings, total, err := handler.service.List(request.Context(), paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, bookings, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}
