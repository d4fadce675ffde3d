package create_event

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-EventsService/internal/api/handlers"
	"github.com/m04kA/SMC-EventsService/internal/service/events"
	"github.com/m04kA/SMC-EventsService/internal/service/events/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	event, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrCategoryNotFound):
			h.logger.Warn("POST /events - Category not found: category_id=%d", req.CategoryID)
			handlers.RespondNotFound(w, msgCategoryNotFound)

		case errors.Is(err, events.ErrInvalidInput):
			h.logger.Warn("POST /events - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /events - Failed to create event: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events - Event created successfully: event_id=%d", event.ID)
	handlers.RespondJSON(w, http.StatusCreated, event)
}
