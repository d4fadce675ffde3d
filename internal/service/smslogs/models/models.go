package models

import (
	"time"

	"github.com/m04kA/SMC-EventsService/internal/domain"
)

// SMSLogResponse запись журнала SMS
type SMSLogResponse struct {
	ID           int64     `json:"id"`
	PhoneNumber  string    `json:"phoneNumber"`
	MessageBody  string    `json:"messageBody"`
	Success      bool      `json:"success"`
	ErrorMessage *string   `json:"errorMessage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SMSLogListResponse ответ со списком записей журнала SMS
type SMSLogListResponse struct {
	Logs []SMSLogResponse `json:"logs"`
}

// FromDomainSMSLogList конвертирует список domain моделей в DTO
func FromDomainSMSLogList(entries []*domain.SMSLog) *SMSLogListResponse {
	resp := &SMSLogListResponse{
		Logs: make([]SMSLogResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Logs = append(resp.Logs, SMSLogResponse{
			ID:           e.ID,
			PhoneNumber:  e.PhoneNumber,
			MessageBody:  e.MessageBody,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			CreatedAt:    e.CreatedAt,
		})
	}
	return resp
}
