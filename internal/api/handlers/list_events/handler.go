package list_events

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-EventsService/internal/api/handlers"
	"github.com/m04kA/SMC-EventsService/internal/service/events/models"
)

const (
	msgInvalidCategoryID = "некорректный categoryId"
	msgInvalidUpcoming   = "некорректный параметр upcoming, ожидается true или false"
)

type Handler struct {
	service EventService
	logger  Logger
}

func NewHandler(service EventService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/events?categoryId=&upcoming=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListEventsRequest{}

	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /events - Invalid categoryId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategoryID)
			return
		}
		req.CategoryID = &categoryID
	}

	if raw := r.URL.Query().Get("upcoming"); raw != "" {
		upcoming, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /events - Invalid upcoming flag: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUpcoming)
			return
		}
		req.UpcomingOnly = upcoming
	}

	eventsList, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /events - Failed to list events: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, eventsList)
}
