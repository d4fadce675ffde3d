package list_sms_logs

import (
	"context"

	"github.com/m04kA/SMC-EventsService/internal/service/smslogs/models"
)

// SMSLogService интерфейс сервиса журнала SMS
type SMSLogService interface {
	List(ctx context.Context) (*models.SMSLogListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
