package list_sms_logs

import (
	"net/http"

	"github.com/m04kA/SMC-EventsService/internal/api/handlers"
)

type Handler struct {
	service SMSLogService
	logger  Logger
}

func NewHandler(service SMSLogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sms/logs
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	logs, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /sms/logs - Failed to list SMS logs: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, logs)
}
