package send_event_reminders

import (
	"context"

	sendEventReminders "github.com/m04kA/SMC-EventsService/internal/usecase/send_event_reminders"
)

// SendEventRemindersUseCase интерфейс use case рассылки напоминаний
type SendEventRemindersUseCase interface {
	Execute(ctx context.Context, req *sendEventReminders.Request) (*sendEventReminders.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
