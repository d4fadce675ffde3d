package list_bookings

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-EventsService/internal/api/handlers"
	"github.com/m04kA/SMC-EventsService/internal/domain"
)

const (
	msgInvalidEventID    = "некорректный eventId"
	msgInvalidCustomerID = "некорректный customerId"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?eventId=&customerId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter := domain.BookingsFilter{}

	if raw := r.URL.Query().Get("eventId"); raw != "" {
		eventID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid eventId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEventID)
			return
		}
		filter.EventID = &eventID
	}

	if raw := r.URL.Query().Get("customerId"); raw != "" {
		customerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid customerId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCustomerID)
			return
		}
		filter.CustomerID = &customerID
	}

	bookingsList, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, bookingsList)
}
