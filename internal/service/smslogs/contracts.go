package smslogs

import (
	"context"

	"github.com/m04kA/SMC-EventsService/internal/domain"
)

// SMSLogRepository интерфейс журнала отправленных SMS
type SMSLogRepository interface {
	List(ctx context.Context) ([]*domain.SMSLog, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
