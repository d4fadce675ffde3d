package send_event_reminders

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-EventsService/internal/api/handlers"
	sendEventReminders "github.com/m04kA/SMC-EventsService/internal/usecase/send_event_reminders"
)

const (
	msgInvalidEventID = "некорректный ID мероприятия"
	msgNotFound       = "мероприятие не найдено"
)

type Handler struct {
	useCase SendEventRemindersUseCase
	logger  Logger
}

func NewHandler(useCase SendEventRemindersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/events/{eventId}/reminders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	eventID, err := strconv.ParseInt(vars["eventId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /events/{id}/reminders - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &sendEventReminders.Request{EventID: eventID})
	if err != nil {
		switch {
		case errors.Is(err, sendEventReminders.ErrEventNotFound):
			h.logger.Warn("POST /events/{id}/reminders - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, sendEventReminders.ErrInvalidInput):
			h.logger.Warn("POST /events/{id}/reminders - Invalid input: event_id=%d, error=%v", eventID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /events/{id}/reminders - Failed to send reminders: event_id=%d, error=%v", eventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events/{id}/reminders - Reminders dispatched: event_id=%d, sent=%d, failed=%d",
		eventID, result.Sent, result.Failed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
