package notifications

import (
	"context"

	"github.com/m04kA/SMC-EventsService/internal/domain"
	"github.com/m04kA/SMC-EventsService/internal/integrations/twilio"
)

// SMSClient интерфейс клиента для внешнего SMS-провайдера
type SMSClient interface {
	IsConfigured() bool
	SendMessage(ctx context.Context, to, body string) (*twilio.SendResult, error)
	CheckHealth(ctx context.Context) (*twilio.HealthResult, error)
}

// SMSLogRepository интерфейс журнала отправленных SMS
type SMSLogRepository interface {
	Insert(ctx context.Context, entry *domain.SMSLog) (*domain.SMSLog, error)
}

// Metrics интерфейс метрик отправки SMS
type Metrics interface {
	ObserveSMSAttempt(template string, success bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
