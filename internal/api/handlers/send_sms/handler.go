package send_sms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-EventsService/internal/api/handlers"
	"github.com/m04kA/SMC-EventsService/internal/integrations/twilio"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingToOrBody    = "поля to и body обязательны"
	msgNotConfigured      = "SMS service is not configured. Please set up Twilio credentials."
)

type Handler struct {
	client SMSClient
	logger Logger
}

func NewHandler(client SMSClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle POST /api/v1/sms/send
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SendSMSRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sms/send - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.To == "" || req.Body == "" {
		h.logger.Warn("POST /sms/send - Missing to or body")
		handlers.RespondBadRequest(w, msgMissingToOrBody)
		return
	}

	result, err := h.client.SendMessage(r.Context(), req.To, req.Body)
	if err != nil {
		switch {
		case errors.Is(err, twilio.ErrNotConfigured):
			h.logger.Warn("POST /sms/send - SMS client not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotConfigured)

		case errors.Is(err, twilio.ErrAPIError):
			h.logger.Warn("POST /sms/send - Provider rejected message: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, err.Error())

		default:
			h.logger.Error("POST /sms/send - Failed to send SMS: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sms/send - SMS sent successfully: sid=%s", result.SID)
	handlers.RespondJSON(w, http.StatusOK, SendSMSResponse{Success: true, SID: result.SID})
}
