package update_event

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-EventsService/internal/api/handlers"
	"github.com/m04kA/SMC-EventsService/internal/service/events"
	"github.com/m04kA/SMC-EventsService/internal/service/events/models"
)

const (
	msgInvalidEventID     = "некорректный ID мероприятия"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "мероприятие не найдено"
	msgCategoryNotFound   = "категория не найдена"
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

// Handle PUT /api/v1/events/{eventId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /events/{id} - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req models.UpdateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /events/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	event, err := h.service.Update(r.Context(), eventID, &req)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("PUT /events/{id} - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, events.ErrCategoryNotFound):
			h.logger.Warn("PUT /events/{id} - Category not found: event_id=%d, category_id=%d", eventID, req.CategoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("PUT /events/{id} - Invalid input: event_id=%d, error=%v", eventID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /events/{id} - Failed to update event: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /events/{id} - Event updated successfully: event_id=%d", eventID)
	handlers.RespondJSON(w, http.StatusOK, event)
}
