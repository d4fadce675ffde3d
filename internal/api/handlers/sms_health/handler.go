package sms_health

import (
	"net/http"

	"github.com/m04kA/SMC-EventsService/internal/api/handlers"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sms/health
// Ответ всегда 200: состояние связи с провайдером лежит в теле.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.service.CheckHealth(r.Context())
	if !result.Success {
		h.logger.Warn("GET /sms/health - SMS provider unhealthy: %s", result.Message)
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
