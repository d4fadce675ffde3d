package send_event_reminders

import (
	sendEventReminders "github.com/m04kA/SMC-EventsService/internal/usecase/send_event_reminders"
)

// SendRemindersResponse HTTP ответ с итогами рассылки
type SendRemindersResponse struct {
	EventID int64  `json:"eventId"`
	Total   int    `json:"total"`
	Success int    `json:"success"`
	Failed  int    `json:"failed"`
	Message string `json:"message"`
}

// FromUseCaseResponse конвертирует модель use case в HTTP ответ
func FromUseCaseResponse(resp *sendEventReminders.Response) *SendRemindersResponse {
	return &SendRemindersResponse{
		EventID: resp.EventID,
		Total:   resp.Total,
		Success: resp.Sent,
		Failed:  resp.Failed,
		Message: resp.Summary(),
	}
}
